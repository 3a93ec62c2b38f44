// Package admin declares how each catalog model is listed, searched,
// filtered and edited through the admin API. The declarations are plain
// data; the helpers in this package turn them into gorm query scopes.
package admin

import (
	"errors"
	"fmt"
	"strings"

	"movie-admin/internal/models"

	"gorm.io/gorm"
)

var ErrInvalidFilter = errors.New("invalid filter value")

// Column is one entry of a list page. Computed columns have no database
// counterpart and cannot be sorted on.
type Column struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Computed bool   `json:"computed,omitempty"`
	Sortable bool   `json:"sortable"`
}

type Filter struct {
	Field   string          `json:"field"`
	Label   string          `json:"label"`
	Choices []models.Choice `json:"choices,omitempty"`
}

// Inline describes an association edited together with its parent.
type Inline struct {
	Name               string   `json:"name"`
	Model              string   `json:"model"`
	Label              string   `json:"label"`
	Fields             []string `json:"fields"`
	AutocompleteFields []string `json:"autocomplete_fields,omitempty"`
}

// Prefetch is a relation preloaded for every list page.
type Prefetch struct {
	Name  string
	Path  string
	Order string
}

type ModelAdmin struct {
	Name              string
	VerboseName       string
	VerboseNamePlural string
	ListDisplay       []Column
	SearchFields      []string
	ListFilter        []Filter
	Ordering          []string
	Inlines           []Inline
	PrefetchRelated   []Prefetch
	ListPerPage       int
	ListMaxShowAll    int
}

// Row is a rendered list entry keyed by column name.
type Row struct {
	ID     any            `json:"id"`
	Label  string         `json:"label"`
	Values map[string]any `json:"values"`
}

type Metadata struct {
	Name              string   `json:"name"`
	VerboseName       string   `json:"verbose_name"`
	VerboseNamePlural string   `json:"verbose_name_plural"`
	ListDisplay       []Column `json:"list_display"`
	SearchFields      []string `json:"search_fields"`
	ListFilter        []Filter `json:"list_filter"`
	Ordering          []string `json:"ordering"`
	Inlines           []Inline `json:"inlines"`
	PrefetchRelated   []string `json:"prefetch_related"`
	ListPerPage       int      `json:"list_per_page"`
	ListMaxShowAll    int      `json:"list_max_show_all"`
}

func (a *ModelAdmin) Describe() Metadata {
	prefetch := make([]string, 0, len(a.PrefetchRelated))
	seen := make(map[string]bool)
	for _, p := range a.PrefetchRelated {
		if !seen[p.Name] {
			seen[p.Name] = true
			prefetch = append(prefetch, p.Name)
		}
	}

	return Metadata{
		Name:              a.Name,
		VerboseName:       a.VerboseName,
		VerboseNamePlural: a.VerboseNamePlural,
		ListDisplay:       a.ListDisplay,
		SearchFields:      a.SearchFields,
		ListFilter:        nonNilFilters(a.ListFilter),
		Ordering:          a.Ordering,
		Inlines:           nonNilInlines(a.Inlines),
		PrefetchRelated:   prefetch,
		ListPerPage:       a.ListPerPage,
		ListMaxShowAll:    a.ListMaxShowAll,
	}
}

// ApplySearch matches term case-insensitively as a substring of any search field.
func (a *ModelAdmin) ApplySearch(db *gorm.DB, term string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(a.SearchFields) == 0 {
		return db
	}

	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	conds := make([]string, 0, len(a.SearchFields))
	args := make([]interface{}, 0, len(a.SearchFields))
	for _, field := range a.SearchFields {
		conds = append(conds, fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, field))
		args = append(args, pattern)
	}

	return db.Where("("+strings.Join(conds, " OR ")+")", args...)
}

// ApplyFilters applies exact-match list filters. Unknown keys are ignored;
// values outside a filter's choices are rejected.
func (a *ModelAdmin) ApplyFilters(db *gorm.DB, params map[string]string) (*gorm.DB, error) {
	for _, f := range a.ListFilter {
		value, ok := params[f.Field]
		if !ok || value == "" {
			continue
		}
		if len(f.Choices) > 0 && !hasChoice(f.Choices, value) {
			return db, fmt.Errorf("%w: %s=%q", ErrInvalidFilter, f.Field, value)
		}
		db = db.Where(fmt.Sprintf("%s = ?", f.Field), value)
	}
	return db, nil
}

// ApplyOrdering sorts by sortBy when it is a sortable column, otherwise by
// the declared default ordering. The primary key is always the final tie breaker.
func (a *ModelAdmin) ApplyOrdering(db *gorm.DB, sortBy, order string) *gorm.DB {
	if a.isSortable(sortBy) {
		direction := "DESC"
		if strings.EqualFold(order, "asc") {
			direction = "ASC"
		}
		db = db.Order(sortBy + " " + direction)
	} else {
		for _, o := range a.Ordering {
			if strings.HasPrefix(o, "-") {
				db = db.Order(strings.TrimPrefix(o, "-") + " DESC")
			} else {
				db = db.Order(o + " ASC")
			}
		}
	}
	return db.Order("id ASC")
}

func (a *ModelAdmin) ApplyPrefetch(db *gorm.DB) *gorm.DB {
	for _, p := range a.PrefetchRelated {
		if p.Order == "" {
			db = db.Preload(p.Path)
			continue
		}
		order := p.Order
		db = db.Preload(p.Path, func(tx *gorm.DB) *gorm.DB {
			return tx.Order(order)
		})
	}
	return db
}

// PageSize clamps a requested page size to the admin limits.
func (a *ModelAdmin) PageSize(limit int) int {
	if limit < 1 {
		return a.ListPerPage
	}
	if limit > a.ListMaxShowAll {
		return a.ListMaxShowAll
	}
	return limit
}

func (a *ModelAdmin) Row(obj models.Displayer) Row {
	row := Row{Values: make(map[string]any, len(a.ListDisplay))}
	if id, ok := obj.DisplayValue("id"); ok {
		row.ID = id
	}
	if s, ok := obj.(fmt.Stringer); ok {
		row.Label = s.String()
	}
	for _, col := range a.ListDisplay {
		if v, ok := obj.DisplayValue(col.Name); ok {
			row.Values[col.Name] = v
		}
	}
	return row
}

func (a *ModelAdmin) isSortable(field string) bool {
	for _, col := range a.ListDisplay {
		if col.Name == field {
			return col.Sortable && !col.Computed
		}
	}
	return false
}

func hasChoice(choices []models.Choice, value string) bool {
	for _, c := range choices {
		if c.Value == value {
			return true
		}
	}
	return false
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func nonNilFilters(f []Filter) []Filter {
	if f == nil {
		return []Filter{}
	}
	return f
}

func nonNilInlines(i []Inline) []Inline {
	if i == nil {
		return []Inline{}
	}
	return i
}
