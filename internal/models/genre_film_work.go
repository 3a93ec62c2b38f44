package models

import (
	"time"

	"github.com/google/uuid"
)

// GenreFilmWork links a film work to one of its genres.
type GenreFilmWork struct {
	UUIDMixin
	FilmWorkID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:unique_genre,priority:1;index:film_work_genre_idx" json:"film_work_id"`
	GenreID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:unique_genre,priority:2" json:"genre_id"`
	FilmWork   *FilmWork `gorm:"foreignKey:FilmWorkID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	Genre      *Genre    `gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE" json:"genre,omitempty" validate:"-"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
