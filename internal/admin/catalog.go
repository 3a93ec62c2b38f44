package admin

import "movie-admin/internal/models"

func PersonAdmin() *ModelAdmin {
	return &ModelAdmin{
		Name:              PersonModel,
		VerboseName:       "Person",
		VerboseNamePlural: "Persons",
		ListDisplay: []Column{
			{Name: "full_name", Label: "Full name", Sortable: true},
		},
		SearchFields: []string{"full_name"},
		Ordering:     []string{"full_name"},
	}
}

func GenreAdmin() *ModelAdmin {
	return &ModelAdmin{
		Name:              GenreModel,
		VerboseName:       "Genre",
		VerboseNamePlural: "Genres",
		ListDisplay: []Column{
			{Name: "name", Label: "Name", Sortable: true},
			{Name: "description", Label: "Description", Sortable: true},
		},
		SearchFields: []string{"name", "description"},
		Ordering:     []string{"name"},
	}
}

func FilmWorkAdmin() *ModelAdmin {
	return &ModelAdmin{
		Name:              FilmWorkModel,
		VerboseName:       "Filmwork",
		VerboseNamePlural: "Filmworks",
		ListDisplay: []Column{
			{Name: "title", Label: "Title", Sortable: true},
			{Name: "type", Label: "Type", Sortable: true},
			{Name: "genres", Label: "Film genres", Computed: true},
			{Name: "creation_date", Label: "Creation date", Sortable: true},
			{Name: "rating", Label: "Rating", Sortable: true},
		},
		SearchFields: []string{"title", "description"},
		ListFilter: []Filter{
			{Field: "type", Label: "Type", Choices: models.FilmWorkTypeChoices()},
		},
		Ordering: []string{"-modified_at"},
		Inlines: []Inline{
			{
				Name:               "persons",
				Model:              "person_film_work",
				Label:              "Persons",
				Fields:             []string{"person", "role"},
				AutocompleteFields: []string{"person"},
			},
			{
				Name:               "genres",
				Model:              "genre_film_work",
				Label:              "Genres",
				Fields:             []string{"genre"},
				AutocompleteFields: []string{"genre"},
			},
		},
		PrefetchRelated: []Prefetch{
			{Name: "genres", Path: "GenreFilmWorks", Order: "created_at ASC, id ASC"},
			{Name: "genres", Path: "GenreFilmWorks.Genre"},
		},
	}
}
