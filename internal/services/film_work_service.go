package services

import (
	"context"
	"fmt"

	"movie-admin/internal/admin"
	"movie-admin/internal/models"
	"movie-admin/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type FilmWorkService interface {
	// CreateFilmWork stores the film work together with the genre and
	// person links carried in GenreFilmWorks and PersonFilmWorks.
	CreateFilmWork(ctx context.Context, filmWork *models.FilmWork) error
	UpdateFilmWork(ctx context.Context, id uuid.UUID, filmWork *models.FilmWork) error
	DeleteFilmWork(ctx context.Context, id uuid.UUID) error
	GetFilmWorkByID(ctx context.Context, id uuid.UUID) (*models.FilmWork, error)
	ListFilmWorks(ctx context.Context, params ListParams) (*ListResult, error)
}

type filmWorkService struct {
	repo       repository.FilmWorkRepository
	genreRepo  repository.GenreRepository
	personRepo repository.PersonRepository
	admin      *admin.ModelAdmin
	logger     *logrus.Logger
}

func NewFilmWorkService(repo repository.FilmWorkRepository, genreRepo repository.GenreRepository, personRepo repository.PersonRepository, a *admin.ModelAdmin, logger *logrus.Logger) FilmWorkService {
	return &filmWorkService{
		repo:       repo,
		genreRepo:  genreRepo,
		personRepo: personRepo,
		admin:      a,
		logger:     logger,
	}
}

func (s *filmWorkService) CreateFilmWork(ctx context.Context, filmWork *models.FilmWork) error {
	filmWork.ID = uuid.Nil
	if err := s.validate(ctx, filmWork); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, filmWork); err != nil {
		return mapError("film work", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":      filmWork.ID,
		"title":   filmWork.Title,
		"genres":  len(filmWork.GenreFilmWorks),
		"persons": len(filmWork.PersonFilmWorks),
	}).Info("Film work created")

	return s.reload(ctx, filmWork)
}

func (s *filmWorkService) UpdateFilmWork(ctx context.Context, id uuid.UUID, filmWork *models.FilmWork) error {
	filmWork.ID = id
	if err := s.validate(ctx, filmWork); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, filmWork); err != nil {
		return mapError("film work", err)
	}

	return s.reload(ctx, filmWork)
}

// DeleteFilmWork deletes the film work and all of its genre and person links.
func (s *filmWorkService) DeleteFilmWork(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError("film work", err)
	}

	s.logger.WithField("id", id).Info("Film work deleted")
	return nil
}

func (s *filmWorkService) GetFilmWorkByID(ctx context.Context, id uuid.UUID) (*models.FilmWork, error) {
	filmWork, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapError("film work", err)
	}
	return filmWork, nil
}

func (s *filmWorkService) ListFilmWorks(ctx context.Context, params ListParams) (*ListResult, error) {
	q := toListQuery(s.admin, params)

	filmWorks, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, mapError("film work", err)
	}

	rows := make([]admin.Row, 0, len(filmWorks))
	for i := range filmWorks {
		rows = append(rows, s.admin.Row(&filmWorks[i]))
	}
	return &ListResult{Rows: rows, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

func (s *filmWorkService) reload(ctx context.Context, filmWork *models.FilmWork) error {
	stored, err := s.repo.FindByID(ctx, filmWork.ID)
	if err != nil {
		return mapError("film work", err)
	}
	*filmWork = *stored
	return nil
}

// validate checks the film work fields and its links. Duplicate links and
// links to missing genres or persons are reported per row.
func (s *filmWorkService) validate(ctx context.Context, filmWork *models.FilmWork) error {
	verr := &models.ValidationError{}
	if err := models.Validate(filmWork); err != nil {
		fieldErr, ok := err.(*models.ValidationError)
		if !ok {
			return err
		}
		verr = fieldErr
	}

	genreIDs := make([]uuid.UUID, 0, len(filmWork.GenreFilmWorks))
	seenGenres := make(map[uuid.UUID]bool)
	for i, link := range filmWork.GenreFilmWorks {
		field := fmt.Sprintf("genres[%d].genre_id", i)
		switch {
		case link.GenreID == uuid.Nil:
			verr.Add(field, "this field is required")
		case seenGenres[link.GenreID]:
			verr.Add(field, "genre is already linked to this film work")
		default:
			seenGenres[link.GenreID] = true
			genreIDs = append(genreIDs, link.GenreID)
		}
	}

	personIDs := make([]uuid.UUID, 0, len(filmWork.PersonFilmWorks))
	seenPersons := make(map[uuid.UUID]bool)
	seenRoles := make(map[string]bool)
	for i, link := range filmWork.PersonFilmWorks {
		field := fmt.Sprintf("persons[%d]", i)
		if link.Role != nil && !link.Role.Valid() {
			verr.Add(field+".role", "value must be one of: director, writer, actor")
			continue
		}
		if link.PersonID == uuid.Nil {
			verr.Add(field+".person_id", "this field is required")
			continue
		}
		key := link.PersonID.String() + "/" + link.RoleValue()
		if seenRoles[key] {
			verr.Add(field, "person is already linked to this film work with this role")
			continue
		}
		seenRoles[key] = true
		if !seenPersons[link.PersonID] {
			seenPersons[link.PersonID] = true
			personIDs = append(personIDs, link.PersonID)
		}
	}

	if err := s.checkGenresExist(ctx, filmWork.GenreFilmWorks, genreIDs, verr); err != nil {
		return err
	}
	if err := s.checkPersonsExist(ctx, filmWork.PersonFilmWorks, personIDs, verr); err != nil {
		return err
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func (s *filmWorkService) checkGenresExist(ctx context.Context, links []models.GenreFilmWork, ids []uuid.UUID, verr *models.ValidationError) error {
	if len(ids) == 0 {
		return nil
	}
	genres, err := s.genreRepo.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load genres: %w", err)
	}

	found := make(map[uuid.UUID]bool, len(genres))
	for _, g := range genres {
		found[g.ID] = true
	}
	for i, link := range links {
		if link.GenreID != uuid.Nil && !found[link.GenreID] {
			verr.Add(fmt.Sprintf("genres[%d].genre_id", i), "genre does not exist")
		}
	}
	return nil
}

func (s *filmWorkService) checkPersonsExist(ctx context.Context, links []models.PersonFilmWork, ids []uuid.UUID, verr *models.ValidationError) error {
	if len(ids) == 0 {
		return nil
	}
	persons, err := s.personRepo.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load persons: %w", err)
	}

	found := make(map[uuid.UUID]bool, len(persons))
	for _, p := range persons {
		found[p.ID] = true
	}
	for i, link := range links {
		if link.PersonID != uuid.Nil && !found[link.PersonID] {
			verr.Add(fmt.Sprintf("persons[%d].person_id", i), "person does not exist")
		}
	}
	return nil
}
