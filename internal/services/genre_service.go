package services

import (
	"context"

	"movie-admin/internal/admin"
	"movie-admin/internal/models"
	"movie-admin/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type GenreService interface {
	CreateGenre(ctx context.Context, genre *models.Genre) error
	UpdateGenre(ctx context.Context, id uuid.UUID, genre *models.Genre) error
	DeleteGenre(ctx context.Context, id uuid.UUID) error
	GetGenreByID(ctx context.Context, id uuid.UUID) (*models.Genre, error)
	ListGenres(ctx context.Context, params ListParams) (*ListResult, error)
	AutocompleteGenres(ctx context.Context, term string) ([]AutocompleteItem, error)
}

type genreService struct {
	repo   repository.GenreRepository
	admin  *admin.ModelAdmin
	logger *logrus.Logger
}

func NewGenreService(repo repository.GenreRepository, a *admin.ModelAdmin, logger *logrus.Logger) GenreService {
	return &genreService{
		repo:   repo,
		admin:  a,
		logger: logger,
	}
}

func (s *genreService) CreateGenre(ctx context.Context, genre *models.Genre) error {
	genre.ID = uuid.Nil
	if err := models.Validate(genre); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, genre); err != nil {
		return mapError("genre", err)
	}

	s.logger.WithFields(logrus.Fields{"id": genre.ID, "name": genre.Name}).Info("Genre created")
	return nil
}

func (s *genreService) UpdateGenre(ctx context.Context, id uuid.UUID, genre *models.Genre) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapError("genre", err)
	}

	genre.ID = id
	genre.CreatedAt = existing.CreatedAt
	if err := models.Validate(genre); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, genre); err != nil {
		return mapError("genre", err)
	}
	return nil
}

func (s *genreService) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError("genre", err)
	}

	s.logger.WithField("id", id).Info("Genre deleted")
	return nil
}

func (s *genreService) GetGenreByID(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	genre, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapError("genre", err)
	}
	return genre, nil
}

func (s *genreService) ListGenres(ctx context.Context, params ListParams) (*ListResult, error) {
	q := toListQuery(s.admin, params)

	genres, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, mapError("genre", err)
	}

	rows := make([]admin.Row, 0, len(genres))
	for i := range genres {
		rows = append(rows, s.admin.Row(&genres[i]))
	}
	return &ListResult{Rows: rows, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

func (s *genreService) AutocompleteGenres(ctx context.Context, term string) ([]AutocompleteItem, error) {
	genres, _, err := s.repo.FindAll(ctx, repository.ListQuery{Search: term, Page: 1, Limit: autocompleteLimit})
	if err != nil {
		return nil, mapError("genre", err)
	}

	items := make([]AutocompleteItem, 0, len(genres))
	for _, g := range genres {
		items = append(items, AutocompleteItem{ID: g.ID, Text: g.String()})
	}
	return items, nil
}
