package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"movie-admin/internal/admin"
	"movie-admin/internal/config"
	"movie-admin/internal/database"
	"movie-admin/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

type testRepos struct {
	db        *database.Database
	genres    GenreRepository
	persons   PersonRepository
	filmWorks FilmWorkRepository
}

func setupRepos(t *testing.T) *testRepos {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := database.Open(sqlite.Open(dsn), config.DatabaseConfig{
		AutoMigrate:  true,
		MaxOpenConns: 1,
		QueryTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	registry := admin.NewDefaultRegistry(config.AdminConfig{ListPerPage: 100, ListMaxShowAll: 200})
	genreAdmin, _ := registry.Get(admin.GenreModel)
	personAdmin, _ := registry.Get(admin.PersonModel)
	filmWorkAdmin, _ := registry.Get(admin.FilmWorkModel)

	return &testRepos{
		db:        db,
		genres:    NewGenreRepository(db, genreAdmin),
		persons:   NewPersonRepository(db, personAdmin),
		filmWorks: NewFilmWorkRepository(db, filmWorkAdmin),
	}
}

func ptr[T any](v T) *T { return &v }

func (r *testRepos) genre(t *testing.T, name string) models.Genre {
	t.Helper()
	g := models.Genre{Name: name}
	require.NoError(t, r.genres.Create(context.Background(), &g))
	return g
}

func (r *testRepos) person(t *testing.T, name string) models.Person {
	t.Helper()
	p := models.Person{FullName: name}
	require.NoError(t, r.persons.Create(context.Background(), &p))
	return p
}

func (r *testRepos) filmWork(t *testing.T, title string, genres ...models.Genre) models.FilmWork {
	t.Helper()
	f := models.FilmWork{
		Title:        title,
		CreationDate: models.NewDate(1979, time.May, 25),
		Type:         ptr(models.FilmWorkTypeMovie),
	}
	for _, g := range genres {
		f.GenreFilmWorks = append(f.GenreFilmWorks, models.GenreFilmWork{GenreID: g.ID})
	}
	require.NoError(t, r.filmWorks.Create(context.Background(), &f))
	return f
}

func count(t *testing.T, r *testRepos, model interface{}, where string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, r.db.Model(model).Where(where, args...).Count(&n).Error)
	return n
}

func TestGenreRepositoryCRUD(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	g := r.genre(t, "Drama")
	assert.NotEqual(t, uuid.Nil, g.ID)
	assert.False(t, g.CreatedAt.IsZero())
	assert.False(t, g.ModifiedAt.IsZero())

	found, err := r.genres.FindByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Drama", found.Name)

	found.Description = "Serious stories"
	require.NoError(t, r.genres.Update(ctx, found))

	found, err = r.genres.FindByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Serious stories", found.Description)

	require.NoError(t, r.genres.Delete(ctx, g.ID))
	_, err = r.genres.FindByID(ctx, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, r.genres.Delete(ctx, g.ID), ErrNotFound)
}

func TestGenreRepositorySearch(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	r.genre(t, "Drama")
	r.genre(t, "Comedy")
	documentary := models.Genre{Name: "Documentary", Description: "Real DRAMA"}
	require.NoError(t, r.genres.Create(ctx, &documentary))

	genres, total, err := r.genres.FindAll(ctx, ListQuery{Search: "drama", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, genres, 2)
	assert.Equal(t, "Documentary", genres[0].Name, "default ordering is by name")
	assert.Equal(t, "Drama", genres[1].Name)

	genres, total, err = r.genres.FindAll(ctx, ListQuery{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, genres, 1)
	assert.Equal(t, "Drama", genres[0].Name)

	genres, total, err = r.genres.FindAll(ctx, ListQuery{Search: "western"})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, genres)
}

func TestGenreRepositoryFindByIDs(t *testing.T) {
	r := setupRepos(t)

	a := r.genre(t, "Drama")
	b := r.genre(t, "Comedy")

	found, err := r.genres.FindByIDs(context.Background(), []uuid.UUID{a.ID, b.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = r.genres.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestPersonRepositoryCRUD(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	p := r.person(t, "Andrei Tarkovsky")
	r.person(t, "Natalya Bondarchuk")

	persons, total, err := r.persons.FindAll(ctx, ListQuery{Search: "TARK"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, persons, 1)
	assert.Equal(t, p.ID, persons[0].ID)

	p.FullName = "Andrei Arsenyevich Tarkovsky"
	require.NoError(t, r.persons.Update(ctx, &p))

	found, err := r.persons.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Andrei Arsenyevich Tarkovsky", found.FullName)

	require.NoError(t, r.persons.Delete(ctx, p.ID))
	_, err = r.persons.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFilmWorkCreateWithLinks(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	drama := r.genre(t, "Drama")
	comedy := r.genre(t, "Comedy")
	director := r.person(t, "Andrei Tarkovsky")

	f := models.FilmWork{
		Title:          "Stalker",
		CreationDate:   models.NewDate(1979, time.May, 25),
		Rating:         ptr(81.0),
		GenreFilmWorks: []models.GenreFilmWork{{GenreID: drama.ID}, {GenreID: comedy.ID}},
		PersonFilmWorks: []models.PersonFilmWork{
			{PersonID: director.ID, Role: ptr(models.RoleDirector)},
			{PersonID: director.ID, Role: ptr(models.RoleWriter)},
		},
	}
	require.NoError(t, r.filmWorks.Create(ctx, &f))

	found, err := r.filmWorks.FindByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stalker", found.Title)
	assert.Equal(t, "1979-05-25", found.CreationDate.String())
	assert.Nil(t, found.Type)
	assert.Equal(t, "Drama,Comedy", found.GenresDisplay())
	require.Len(t, found.PersonFilmWorks, 2)
	assert.Equal(t, "Andrei Tarkovsky", found.PersonFilmWorks[0].Person.FullName)
}

func TestGenreFilmWorkIsUnique(t *testing.T) {
	r := setupRepos(t)
	drama := r.genre(t, "Drama")
	f := r.filmWork(t, "Stalker", drama)

	err := r.db.Create(&models.GenreFilmWork{FilmWorkID: f.ID, GenreID: drama.ID}).Error
	require.Error(t, err)
	assert.ErrorIs(t, translate(err), ErrDuplicate)
}

func TestPersonFilmWorkIsUniquePerRole(t *testing.T) {
	r := setupRepos(t)
	p := r.person(t, "Andrei Tarkovsky")
	f := r.filmWork(t, "Stalker")

	require.NoError(t, r.db.Create(&models.PersonFilmWork{FilmWorkID: f.ID, PersonID: p.ID, Role: ptr(models.RoleDirector)}).Error)
	require.NoError(t, r.db.Create(&models.PersonFilmWork{FilmWorkID: f.ID, PersonID: p.ID, Role: ptr(models.RoleWriter)}).Error)

	err := r.db.Create(&models.PersonFilmWork{FilmWorkID: f.ID, PersonID: p.ID, Role: ptr(models.RoleDirector)}).Error
	require.Error(t, err)
	assert.ErrorIs(t, translate(err), ErrDuplicate)
}

func TestFilmWorkRatingCheckConstraint(t *testing.T) {
	r := setupRepos(t)

	err := r.db.Create(&models.FilmWork{
		Title:        "Broken",
		CreationDate: models.NewDate(2000, time.January, 1),
		Rating:       ptr(101.0),
	}).Error
	assert.Error(t, err)
}

func insertFilmWork(r *testRepos, filmType string) error {
	now := time.Now().UTC()
	return r.db.Exec(
		"INSERT INTO film_work (id, title, description, creation_date, type, created_at, modified_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		uuid.New(), "Raw", "", models.NewDate(2000, time.January, 1), filmType, now, now,
	).Error
}

func TestFilmWorkTypeCheckConstraint(t *testing.T) {
	r := setupRepos(t)

	require.NoError(t, insertFilmWork(r, "tv_show"))
	assert.Error(t, insertFilmWork(r, "cartoon"))
	assert.EqualValues(t, 1, count(t, r, &models.FilmWork{}, "title = ?", "Raw"))
}

func TestPersonFilmWorkRoleCheckConstraint(t *testing.T) {
	r := setupRepos(t)
	p := r.person(t, "Andrei Tarkovsky")
	f := r.filmWork(t, "Stalker")

	insert := func(role string) error {
		return r.db.Exec(
			"INSERT INTO person_film_work (id, film_work_id, person_id, role, created_at) VALUES (?, ?, ?, ?, ?)",
			uuid.New(), f.ID, p.ID, role, time.Now().UTC(),
		).Error
	}

	require.NoError(t, insert("actor"))
	assert.Error(t, insert("producer"))
	assert.EqualValues(t, 1, count(t, r, &models.PersonFilmWork{}, "film_work_id = ?", f.ID))
}

func TestFilmWorkDeleteCascades(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	drama := r.genre(t, "Drama")
	p := r.person(t, "Andrei Tarkovsky")
	f := r.filmWork(t, "Stalker", drama)
	other := r.filmWork(t, "Solaris", drama)
	require.NoError(t, r.db.Create(&models.PersonFilmWork{FilmWorkID: f.ID, PersonID: p.ID}).Error)

	require.NoError(t, r.filmWorks.Delete(ctx, f.ID))

	assert.Zero(t, count(t, r, &models.GenreFilmWork{}, "film_work_id = ?", f.ID))
	assert.Zero(t, count(t, r, &models.PersonFilmWork{}, "film_work_id = ?", f.ID))
	assert.EqualValues(t, 1, count(t, r, &models.GenreFilmWork{}, "film_work_id = ?", other.ID))

	_, err := r.genres.FindByID(ctx, drama.ID)
	assert.NoError(t, err, "genres survive film work deletion")

	assert.ErrorIs(t, r.filmWorks.Delete(ctx, f.ID), ErrNotFound)
}

func TestFilmWorkForeignKeysCascadeOnDelete(t *testing.T) {
	r := setupRepos(t)

	drama := r.genre(t, "Drama")
	p := r.person(t, "Andrei Tarkovsky")
	f := r.filmWork(t, "Stalker", drama)
	require.NoError(t, r.db.Create(&models.PersonFilmWork{FilmWorkID: f.ID, PersonID: p.ID, Role: ptr(models.RoleDirector)}).Error)

	require.NoError(t, r.db.Exec("DELETE FROM film_work WHERE id = ?", f.ID).Error)

	assert.Zero(t, count(t, r, &models.GenreFilmWork{}, "film_work_id = ?", f.ID))
	assert.Zero(t, count(t, r, &models.PersonFilmWork{}, "film_work_id = ?", f.ID))

	other := r.filmWork(t, "Solaris", drama)
	require.NoError(t, r.db.Exec("DELETE FROM genre WHERE id = ?", drama.ID).Error)
	assert.Zero(t, count(t, r, &models.GenreFilmWork{}, "film_work_id = ?", other.ID))
}

func TestGenreDeleteRemovesLinks(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	drama := r.genre(t, "Drama")
	f := r.filmWork(t, "Stalker", drama)

	require.NoError(t, r.genres.Delete(ctx, drama.ID))
	assert.Zero(t, count(t, r, &models.GenreFilmWork{}, "genre_id = ?", drama.ID))

	found, err := r.filmWorks.FindByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Empty(t, found.GenreFilmWorks)
}

func TestFilmWorkUpdateSyncsLinks(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	drama := r.genre(t, "Drama")
	comedy := r.genre(t, "Comedy")
	scifi := r.genre(t, "Sci-Fi")
	actor := r.person(t, "Anatoly Solonitsyn")

	f := r.filmWork(t, "Stalker", drama, comedy)
	original, err := r.filmWorks.FindByID(ctx, f.ID)
	require.NoError(t, err)
	keptLinkID := original.GenreFilmWorks[0].ID

	update := models.FilmWork{
		UUIDMixin:       models.UUIDMixin{ID: f.ID},
		Title:           "Stalker (restored)",
		CreationDate:    f.CreationDate,
		Rating:          ptr(90.0),
		Type:            ptr(models.FilmWorkTypeTVShow),
		GenreFilmWorks:  []models.GenreFilmWork{{GenreID: drama.ID}, {GenreID: scifi.ID}},
		PersonFilmWorks: []models.PersonFilmWork{{PersonID: actor.ID, Role: ptr(models.RoleActor)}},
	}
	require.NoError(t, r.filmWorks.Update(ctx, &update))

	found, err := r.filmWorks.FindByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stalker (restored)", found.Title)
	assert.Equal(t, models.FilmWorkTypeTVShow, *found.Type)
	assert.Equal(t, 90.0, *found.Rating)
	assert.Equal(t, []string{"Drama", "Sci-Fi"}, found.GenreNames())
	assert.Equal(t, keptLinkID, found.GenreFilmWorks[0].ID, "unchanged links keep their id")
	require.Len(t, found.PersonFilmWorks, 1)
	assert.Equal(t, models.RoleActor, *found.PersonFilmWorks[0].Role)

	update.ID = uuid.New()
	assert.ErrorIs(t, r.filmWorks.Update(ctx, &update), ErrNotFound)
}

func TestFilmWorkFindAll(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	drama := r.genre(t, "Drama")
	comedy := r.genre(t, "Comedy")

	r.filmWork(t, "Stalker", drama, comedy)
	r.filmWork(t, "Solaris", drama)
	show := models.FilmWork{
		Title:        "Twin Peaks",
		Description:  "A TV show about a strange town",
		CreationDate: models.NewDate(1990, time.April, 8),
		Type:         ptr(models.FilmWorkTypeTVShow),
		Rating:       ptr(88.0),
	}
	require.NoError(t, r.filmWorks.Create(ctx, &show))

	films, total, err := r.filmWorks.FindAll(ctx, ListQuery{SortBy: "title", Order: "asc"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, films, 3)
	assert.Equal(t, "Solaris", films[0].Title)
	assert.Equal(t, "Drama", films[0].GenresDisplay())
	assert.Equal(t, "Drama,Comedy", films[1].GenresDisplay(), "genres are prefetched in link order")

	films, total, err = r.filmWorks.FindAll(ctx, ListQuery{Filters: map[string]string{"type": "tv_show"}})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Twin Peaks", films[0].Title)

	films, total, err = r.filmWorks.FindAll(ctx, ListQuery{Search: "strange", Filters: map[string]string{"type": "movie"}})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, films)

	_, _, err = r.filmWorks.FindAll(ctx, ListQuery{Filters: map[string]string{"type": "cartoon"}})
	assert.ErrorIs(t, err, admin.ErrInvalidFilter)
}

func TestFilmWorkFindAllForExport(t *testing.T) {
	r := setupRepos(t)

	drama := r.genre(t, "Drama")
	r.filmWork(t, "Stalker", drama)
	r.filmWork(t, "Mirror")

	films, err := r.filmWorks.FindAllForExport(context.Background())
	require.NoError(t, err)
	require.Len(t, films, 2)
	assert.Equal(t, "Mirror", films[0].Title)
	assert.Equal(t, "Drama", films[1].GenresDisplay())
}
