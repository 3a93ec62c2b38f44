package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"movie-admin/internal/admin"
	"movie-admin/internal/config"
	"movie-admin/internal/database"
	"movie-admin/internal/handlers"
	"movie-admin/internal/repository"
	"movie-admin/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

type memoryStore struct {
	objects map[string][]byte
}

func (m *memoryStore) PutObject(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	m.objects[objectName] = data
	return "http://storage.local/" + objectName, nil
}

// setupApp wires the full admin API over an in-memory database. A nil store
// leaves the export endpoint disabled.
func setupApp(t *testing.T, store services.ObjectStore) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := database.Open(sqlite.Open(dsn), config.DatabaseConfig{AutoMigrate: true, MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	registry := admin.NewDefaultRegistry(config.AdminConfig{ListPerPage: 100, ListMaxShowAll: 200})
	genreAdmin, _ := registry.Get(admin.GenreModel)
	personAdmin, _ := registry.Get(admin.PersonModel)
	filmWorkAdmin, _ := registry.Get(admin.FilmWorkModel)

	genreRepo := repository.NewGenreRepository(db, genreAdmin)
	personRepo := repository.NewPersonRepository(db, personAdmin)
	filmWorkRepo := repository.NewFilmWorkRepository(db, filmWorkAdmin)

	app := fiber.New()
	Setup(app, Handlers{
		Admin:    handlers.NewAdminHandler(registry),
		Genre:    handlers.NewGenreHandler(services.NewGenreService(genreRepo, genreAdmin, log), genreAdmin, log),
		Person:   handlers.NewPersonHandler(services.NewPersonService(personRepo, personAdmin, log), personAdmin, log),
		FilmWork: handlers.NewFilmWorkHandler(services.NewFilmWorkService(filmWorkRepo, genreRepo, personRepo, filmWorkAdmin, log), filmWorkAdmin, log),
		Export:   handlers.NewExportHandler(services.NewExportService(filmWorkRepo, store, "exports", log), log),
	})
	return app
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
}

func call(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func createID(t *testing.T, app *fiber.App, path string, body interface{}) string {
	t.Helper()

	status, env := call(t, app, "POST", path, body)
	require.Equal(t, fiber.StatusCreated, status, env.Message)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	return created.ID
}

func TestListModels(t *testing.T) {
	app := setupApp(t, nil)

	status, env := call(t, app, "GET", "/api/v1/admin/models", nil)
	require.Equal(t, fiber.StatusOK, status)

	var meta []admin.Metadata
	require.NoError(t, json.Unmarshal(env.Data, &meta))
	require.Len(t, meta, 3)
	assert.Equal(t, "person", meta[0].Name)
	assert.Equal(t, "film_work", meta[2].Name)
	assert.Equal(t, []string{"title", "description"}, meta[2].SearchFields)

	status, _ = call(t, app, "GET", "/api/v1/admin/models/film_work", nil)
	assert.Equal(t, fiber.StatusOK, status)
	status, _ = call(t, app, "GET", "/api/v1/admin/models/movie", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestGenreEndpoints(t *testing.T) {
	app := setupApp(t, nil)

	status, env := call(t, app, "POST", "/api/v1/admin/genres", map[string]string{"description": "no name"})
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(env.Data), `"name"`)

	id := createID(t, app, "/api/v1/admin/genres", map[string]string{"name": "Drama"})
	createID(t, app, "/api/v1/admin/genres", map[string]string{"name": "Comedy"})

	status, env = call(t, app, "PUT", "/api/v1/admin/genres/"+id, map[string]string{"name": "Drama", "description": "Serious"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), "Serious")

	status, env = call(t, app, "GET", "/api/v1/admin/genres/autocomplete?term=dra", nil)
	require.Equal(t, fiber.StatusOK, status)
	var items []services.AutocompleteItem
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Drama", items[0].Text)

	status, env = call(t, app, "GET", "/api/v1/admin/genres?sort_by=name&order=desc", nil)
	require.Equal(t, fiber.StatusOK, status)
	var rows []admin.Row
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Drama", rows[0].Label)
	assert.Contains(t, string(env.Meta), `"total":2`)

	status, _ = call(t, app, "GET", "/api/v1/admin/genres/not-a-uuid", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = call(t, app, "DELETE", "/api/v1/admin/genres/"+id, nil)
	assert.Equal(t, fiber.StatusOK, status)
	status, _ = call(t, app, "GET", "/api/v1/admin/genres/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestPersonEndpoints(t *testing.T) {
	app := setupApp(t, nil)

	id := createID(t, app, "/api/v1/admin/persons", map[string]string{"full_name": "Andrei Tarkovsky"})

	status, env := call(t, app, "PUT", "/api/v1/admin/persons/"+id, map[string]string{"full_name": "Andrei Arsenyevich Tarkovsky"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), "Arsenyevich")

	status, _ = call(t, app, "PUT", "/api/v1/admin/persons/"+uuid.NewString(), map[string]string{"full_name": "Nobody"})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = call(t, app, "DELETE", "/api/v1/admin/persons/"+id, nil)
	assert.Equal(t, fiber.StatusOK, status)
	status, _ = call(t, app, "DELETE", "/api/v1/admin/persons/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestFilmWorkEndpoints(t *testing.T) {
	app := setupApp(t, nil)

	drama := createID(t, app, "/api/v1/admin/genres", map[string]string{"name": "Drama"})
	comedy := createID(t, app, "/api/v1/admin/genres", map[string]string{"name": "Comedy"})
	director := createID(t, app, "/api/v1/admin/persons", map[string]string{"full_name": "Andrei Tarkovsky"})

	body := map[string]interface{}{
		"title":         "Solaris",
		"creation_date": "1972-03-20",
		"rating":        81,
		"type":          "movie",
		"genres":        []map[string]string{{"genre_id": drama}, {"genre_id": comedy}},
		"persons":       []map[string]interface{}{{"person_id": director, "role": "director"}},
	}
	id := createID(t, app, "/api/v1/admin/filmworks", body)

	status, env := call(t, app, "GET", "/api/v1/admin/filmworks?type=movie", nil)
	require.Equal(t, fiber.StatusOK, status)
	var rows []admin.Row
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Drama,Comedy", rows[0].Values["genres"])

	status, env = call(t, app, "GET", "/api/v1/admin/filmworks?type=cartoon", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(env.Data), "filter")

	body["rating"] = 101
	body["genres"] = []map[string]string{{"genre_id": drama}, {"genre_id": drama}}
	status, env = call(t, app, "PUT", "/api/v1/admin/filmworks/"+id, body)
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(env.Data), "rating")
	assert.Contains(t, string(env.Data), "genres[1].genre_id")

	body["rating"] = nil
	body["genres"] = []map[string]string{{"genre_id": comedy}}
	status, env = call(t, app, "PUT", "/api/v1/admin/filmworks/"+id, body)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), `"rating":null`)
	assert.NotContains(t, string(env.Data), drama)

	status, _ = call(t, app, "DELETE", "/api/v1/admin/filmworks/"+id, nil)
	assert.Equal(t, fiber.StatusOK, status)
	status, _ = call(t, app, "GET", "/api/v1/admin/filmworks/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestExportEndpoint(t *testing.T) {
	status, _ := call(t, setupApp(t, nil), "POST", "/api/v1/admin/filmworks/export", nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)

	store := &memoryStore{objects: map[string][]byte{}}
	app := setupApp(t, store)
	createID(t, app, "/api/v1/admin/filmworks", map[string]interface{}{
		"title":         "Stalker",
		"creation_date": "1979-05-25",
	})

	status, env := call(t, app, "POST", "/api/v1/admin/filmworks/export", nil)
	require.Equal(t, fiber.StatusOK, status)

	var result services.ExportResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 1, result.FilmWorks)
	assert.Contains(t, store.objects, result.ObjectName)
}
