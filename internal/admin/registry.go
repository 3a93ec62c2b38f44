package admin

import (
	"fmt"

	"movie-admin/internal/config"
)

const (
	GenreModel    = "genre"
	PersonModel   = "person"
	FilmWorkModel = "film_work"
)

type Registry struct {
	admins map[string]*ModelAdmin
	order  []string
}

func NewRegistry() *Registry {
	return &Registry{admins: make(map[string]*ModelAdmin)}
}

// NewDefaultRegistry registers the catalog admins with pagination from cfg.
func NewDefaultRegistry(cfg config.AdminConfig) *Registry {
	r := NewRegistry()
	for _, a := range []*ModelAdmin{PersonAdmin(), GenreAdmin(), FilmWorkAdmin()} {
		a.ListPerPage = cfg.ListPerPage
		a.ListMaxShowAll = cfg.ListMaxShowAll
		r.MustRegister(a)
	}
	return r
}

func (r *Registry) Register(a *ModelAdmin) error {
	if a.Name == "" {
		return fmt.Errorf("admin: model name is required")
	}
	if _, exists := r.admins[a.Name]; exists {
		return fmt.Errorf("admin: model %q is already registered", a.Name)
	}
	if a.ListPerPage < 1 {
		a.ListPerPage = 100
	}
	if a.ListMaxShowAll < a.ListPerPage {
		a.ListMaxShowAll = a.ListPerPage
	}
	r.admins[a.Name] = a
	r.order = append(r.order, a.Name)
	return nil
}

func (r *Registry) MustRegister(a *ModelAdmin) {
	if err := r.Register(a); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(name string) (*ModelAdmin, bool) {
	a, ok := r.admins[name]
	return a, ok
}

// All returns the registered admins in registration order.
func (r *Registry) All() []*ModelAdmin {
	all := make([]*ModelAdmin, 0, len(r.order))
	for _, name := range r.order {
		all = append(all, r.admins[name])
	}
	return all
}
