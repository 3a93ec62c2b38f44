package services

import (
	"errors"
	"fmt"
	"math"

	"movie-admin/internal/admin"
	"movie-admin/internal/models"
	"movie-admin/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrStorageDisabled = errors.New("object storage is not configured")
)

// ListParams is a raw admin list request.
type ListParams struct {
	Page    int
	Limit   int
	Search  string
	SortBy  string
	Order   string
	Filters map[string]string
}

// ListResult is one rendered admin list page.
type ListResult struct {
	Rows  []admin.Row `json:"rows"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

type AutocompleteItem struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

const autocompleteLimit = 20

// toListQuery normalizes paging. The page is capped so that its offset
// still fits in an int32.
func toListQuery(a *admin.ModelAdmin, p ListParams) repository.ListQuery {
	limit := a.PageSize(p.Limit)
	page := p.Page
	if page < 1 {
		page = 1
	}
	if limit > 0 && page > math.MaxInt32/limit+1 {
		page = math.MaxInt32/limit + 1
	}
	return repository.ListQuery{
		Page:    page,
		Limit:   limit,
		Search:  p.Search,
		SortBy:  p.SortBy,
		Order:   p.Order,
		Filters: p.Filters,
	}
}

// mapError converts repository errors into service errors.
func mapError(entity string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s %w", entity, ErrNotFound)
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%s already exists: %w", entity, ErrConflict)
	case errors.Is(err, admin.ErrInvalidFilter):
		return models.NewValidationError("filter", err.Error())
	}
	return err
}
