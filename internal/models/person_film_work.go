package models

import (
	"time"

	"github.com/google/uuid"
)

// PersonFilmWork links a person to a film work under an optional role.
type PersonFilmWork struct {
	UUIDMixin
	FilmWorkID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:unique_person_role,priority:1;index:film_work_person_idx" json:"film_work_id"`
	PersonID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:unique_person_role,priority:2" json:"person_id"`
	Role       *RoleType `gorm:"type:text;uniqueIndex:unique_person_role,priority:3;check:chk_person_film_work_role,role IN ('director','writer','actor')" json:"role" validate:"omitempty,oneof=director writer actor" swaggertype:"string" example:"director"`
	FilmWork   *FilmWork `gorm:"foreignKey:FilmWorkID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	Person     *Person   `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"person,omitempty" validate:"-"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// RoleValue returns the role or an empty string when it is unset.
func (p PersonFilmWork) RoleValue() string {
	if p.Role == nil {
		return ""
	}
	return string(*p.Role)
}
