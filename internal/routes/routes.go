package routes

import (
	"movie-admin/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Admin    *handlers.AdminHandler
	Genre    *handlers.GenreHandler
	Person   *handlers.PersonHandler
	FilmWork *handlers.FilmWorkHandler
	Export   *handlers.ExportHandler
}

func Setup(app *fiber.App, h Handlers) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")
	adm := v1.Group("/admin")

	adm.Get("/models", h.Admin.ListModels)
	adm.Get("/models/:name", h.Admin.GetModel)

	// autocomplete lookups must be registered before /:id
	genres := adm.Group("/genres")
	{
		genres.Get("/", h.Genre.ListGenres)
		genres.Get("/autocomplete", h.Genre.AutocompleteGenres)
		genres.Get("/:id", h.Genre.GetGenre)
		genres.Post("/", h.Genre.CreateGenre)
		genres.Put("/:id", h.Genre.UpdateGenre)
		genres.Delete("/:id", h.Genre.DeleteGenre)
	}

	persons := adm.Group("/persons")
	{
		persons.Get("/", h.Person.ListPersons)
		persons.Get("/autocomplete", h.Person.AutocompletePersons)
		persons.Get("/:id", h.Person.GetPerson)
		persons.Post("/", h.Person.CreatePerson)
		persons.Put("/:id", h.Person.UpdatePerson)
		persons.Delete("/:id", h.Person.DeletePerson)
	}

	filmWorks := adm.Group("/filmworks")
	{
		filmWorks.Get("/", h.FilmWork.ListFilmWorks)
		filmWorks.Post("/export", h.Export.ExportFilmWorks)
		filmWorks.Get("/:id", h.FilmWork.GetFilmWork)
		filmWorks.Post("/", h.FilmWork.CreateFilmWork)
		filmWorks.Put("/:id", h.FilmWork.UpdateFilmWork)
		filmWorks.Delete("/:id", h.FilmWork.DeleteFilmWork)
	}
}
