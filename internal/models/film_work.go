package models

import "strings"

type FilmWork struct {
	UUIDMixin
	Title        string        `gorm:"size:255;not null" json:"title" validate:"required,max=255" example:"Stalker"`
	Description  string        `gorm:"type:text" json:"description"`
	CreationDate Date          `gorm:"type:date;not null" json:"creation_date" validate:"required" swaggertype:"string" example:"1979-05-25"`
	Rating       *float64      `gorm:"check:chk_film_work_rating,rating >= 0 AND rating <= 100" json:"rating" validate:"omitempty,gte=0,lte=100" example:"81"`
	Type         *FilmWorkType `gorm:"type:text;check:chk_film_work_type,type IN ('movie','tv_show')" json:"type" validate:"omitempty,oneof=movie tv_show" swaggertype:"string" example:"movie"`
	TimeStampedMixin

	GenreFilmWorks  []GenreFilmWork  `gorm:"foreignKey:FilmWorkID;constraint:OnDelete:CASCADE" json:"genres,omitempty" validate:"-"`
	PersonFilmWorks []PersonFilmWork `gorm:"foreignKey:FilmWorkID;constraint:OnDelete:CASCADE" json:"persons,omitempty" validate:"-"`
}

func (f FilmWork) String() string {
	return f.Title
}

// GenreNames lists the names of the loaded genres in association order.
func (f *FilmWork) GenreNames() []string {
	names := make([]string, 0, len(f.GenreFilmWorks))
	for _, gf := range f.GenreFilmWorks {
		if gf.Genre != nil {
			names = append(names, gf.Genre.Name)
		}
	}
	return names
}

// GenresDisplay joins the genre names with a comma, e.g. "Drama,Comedy".
func (f *FilmWork) GenresDisplay() string {
	return strings.Join(f.GenreNames(), ",")
}

func (f *FilmWork) DisplayValue(column string) (any, bool) {
	switch column {
	case "id":
		return f.ID, true
	case "title":
		return f.Title, true
	case "description":
		return f.Description, true
	case "creation_date":
		return f.CreationDate, true
	case "rating":
		return f.Rating, true
	case "type":
		return f.Type, true
	case "genres":
		return f.GenresDisplay(), true
	case "created_at":
		return f.CreatedAt, true
	case "modified_at":
		return f.ModifiedAt, true
	}
	return nil, false
}
