package handlers

import (
	"strings"

	"movie-admin/internal/models"

	"github.com/google/uuid"
)

type GenreRequest struct {
	Name        string `json:"name" example:"Drama"`
	Description string `json:"description" example:"Serious, plot-driven stories"`
}

func (r *GenreRequest) ToModel() *models.Genre {
	return &models.Genre{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
	}
}

type PersonRequest struct {
	FullName string `json:"full_name" example:"Andrei Tarkovsky"`
}

func (r *PersonRequest) ToModel() *models.Person {
	return &models.Person{FullName: strings.TrimSpace(r.FullName)}
}

type GenreLinkRequest struct {
	GenreID uuid.UUID `json:"genre_id" swaggertype:"string" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"`
}

type PersonLinkRequest struct {
	PersonID uuid.UUID `json:"person_id" swaggertype:"string" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"`
	Role     *string   `json:"role" example:"director"`
}

// FilmWorkRequest is the film work form together with its genre and person inlines.
type FilmWorkRequest struct {
	Title        string              `json:"title" example:"Stalker"`
	Description  string              `json:"description"`
	CreationDate string              `json:"creation_date" example:"1979-05-25"`
	Rating       *float64            `json:"rating" example:"81"`
	Type         *string             `json:"type" example:"movie"`
	Genres       []GenreLinkRequest  `json:"genres"`
	Persons      []PersonLinkRequest `json:"persons"`
}

func (r *FilmWorkRequest) ToModel() (*models.FilmWork, error) {
	filmWork := &models.FilmWork{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Rating:      r.Rating,
	}

	if s := strings.TrimSpace(r.CreationDate); s != "" {
		date, err := models.ParseDate(s)
		if err != nil {
			return nil, models.NewValidationError("creation_date", "enter a valid date in YYYY-MM-DD format")
		}
		filmWork.CreationDate = date
	}

	if v := blankToNil(r.Type); v != nil {
		t := models.FilmWorkType(*v)
		filmWork.Type = &t
	}

	for _, g := range r.Genres {
		filmWork.GenreFilmWorks = append(filmWork.GenreFilmWorks, models.GenreFilmWork{GenreID: g.GenreID})
	}
	for _, p := range r.Persons {
		link := models.PersonFilmWork{PersonID: p.PersonID}
		if v := blankToNil(p.Role); v != nil {
			role := models.RoleType(*v)
			link.Role = &role
		}
		filmWork.PersonFilmWorks = append(filmWork.PersonFilmWorks, link)
	}

	return filmWork, nil
}

// blankToNil treats an empty choice the same as an unset one.
func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
