package handlers

import (
	"testing"

	"movie-admin/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestFilmWorkRequestToModel(t *testing.T) {
	genreID := uuid.New()
	personID := uuid.New()
	rating := 81.0

	req := FilmWorkRequest{
		Title:        "  Stalker ",
		CreationDate: "1979-05-25",
		Rating:       &rating,
		Type:         strPtr("movie"),
		Genres:       []GenreLinkRequest{{GenreID: genreID}},
		Persons: []PersonLinkRequest{
			{PersonID: personID, Role: strPtr("director")},
			{PersonID: personID, Role: strPtr("")},
		},
	}

	filmWork, err := req.ToModel()
	require.NoError(t, err)

	assert.Equal(t, "Stalker", filmWork.Title)
	assert.Equal(t, "1979-05-25", filmWork.CreationDate.String())
	require.NotNil(t, filmWork.Type)
	assert.Equal(t, models.FilmWorkTypeMovie, *filmWork.Type)
	require.Len(t, filmWork.GenreFilmWorks, 1)
	assert.Equal(t, genreID, filmWork.GenreFilmWorks[0].GenreID)
	require.Len(t, filmWork.PersonFilmWorks, 2)
	assert.Equal(t, "director", filmWork.PersonFilmWorks[0].RoleValue())
	assert.Nil(t, filmWork.PersonFilmWorks[1].Role, "a blank role is unset")
}

func TestFilmWorkRequestBlankType(t *testing.T) {
	req := FilmWorkRequest{Title: "Mirror", CreationDate: "1975-03-07", Type: strPtr(" ")}

	filmWork, err := req.ToModel()
	require.NoError(t, err)
	assert.Nil(t, filmWork.Type)
}

func TestFilmWorkRequestInvalidDate(t *testing.T) {
	req := FilmWorkRequest{Title: "Mirror", CreationDate: "07.03.1975"}

	_, err := req.ToModel()
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "creation_date")
}
