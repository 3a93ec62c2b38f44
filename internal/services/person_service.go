package services

import (
	"context"

	"movie-admin/internal/admin"
	"movie-admin/internal/models"
	"movie-admin/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PersonService interface {
	CreatePerson(ctx context.Context, person *models.Person) error
	UpdatePerson(ctx context.Context, id uuid.UUID, person *models.Person) error
	DeletePerson(ctx context.Context, id uuid.UUID) error
	GetPersonByID(ctx context.Context, id uuid.UUID) (*models.Person, error)
	ListPersons(ctx context.Context, params ListParams) (*ListResult, error)
	AutocompletePersons(ctx context.Context, term string) ([]AutocompleteItem, error)
}

type personService struct {
	repo   repository.PersonRepository
	admin  *admin.ModelAdmin
	logger *logrus.Logger
}

func NewPersonService(repo repository.PersonRepository, a *admin.ModelAdmin, logger *logrus.Logger) PersonService {
	return &personService{
		repo:   repo,
		admin:  a,
		logger: logger,
	}
}

func (s *personService) CreatePerson(ctx context.Context, person *models.Person) error {
	person.ID = uuid.Nil
	if err := models.Validate(person); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, person); err != nil {
		return mapError("person", err)
	}

	s.logger.WithFields(logrus.Fields{"id": person.ID, "full_name": person.FullName}).Info("Person created")
	return nil
}

func (s *personService) UpdatePerson(ctx context.Context, id uuid.UUID, person *models.Person) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapError("person", err)
	}

	person.ID = id
	person.CreatedAt = existing.CreatedAt
	if err := models.Validate(person); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, person); err != nil {
		return mapError("person", err)
	}
	return nil
}

func (s *personService) DeletePerson(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError("person", err)
	}

	s.logger.WithField("id", id).Info("Person deleted")
	return nil
}

func (s *personService) GetPersonByID(ctx context.Context, id uuid.UUID) (*models.Person, error) {
	person, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapError("person", err)
	}
	return person, nil
}

func (s *personService) ListPersons(ctx context.Context, params ListParams) (*ListResult, error) {
	q := toListQuery(s.admin, params)

	persons, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, mapError("person", err)
	}

	rows := make([]admin.Row, 0, len(persons))
	for i := range persons {
		rows = append(rows, s.admin.Row(&persons[i]))
	}
	return &ListResult{Rows: rows, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

func (s *personService) AutocompletePersons(ctx context.Context, term string) ([]AutocompleteItem, error) {
	persons, _, err := s.repo.FindAll(ctx, repository.ListQuery{Search: term, Page: 1, Limit: autocompleteLimit})
	if err != nil {
		return nil, mapError("person", err)
	}

	items := make([]AutocompleteItem, 0, len(persons))
	for _, p := range persons {
		items = append(items, AutocompleteItem{ID: p.ID, Text: p.String()})
	}
	return items, nil
}
