package repository

import (
	"context"

	"movie-admin/internal/admin"
	"movie-admin/internal/database"
	"movie-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PersonRepository interface {
	Create(ctx context.Context, person *models.Person) error
	Update(ctx context.Context, person *models.Person) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Person, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Person, error)
	FindAll(ctx context.Context, q ListQuery) ([]models.Person, int64, error)
}

type personRepository struct {
	baseRepository
}

func NewPersonRepository(db *database.Database, a *admin.ModelAdmin) PersonRepository {
	return &personRepository{baseRepository: newBaseRepository(db, a)}
}

func (r *personRepository) Create(ctx context.Context, person *models.Person) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Create(person).Error)
}

func (r *personRepository) Update(ctx context.Context, person *models.Person) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Save(person).Error)
}

// Delete removes the person together with its film work links.
func (r *personRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("person_id = ?", id).Delete(&models.PersonFilmWork{}).Error; err != nil {
			return translate(err)
		}
		result := tx.Where("id = ?", id).Delete(&models.Person{})
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *personRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Person, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var person models.Person
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&person).Error; err != nil {
		return nil, translate(err)
	}
	return &person, nil
}

func (r *personRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Person, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var persons []models.Person
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&persons).Error
	return persons, translate(err)
}

func (r *personRepository) FindAll(ctx context.Context, q ListQuery) ([]models.Person, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var persons []models.Person
	total, err := r.list(r.db.WithContext(ctx).Model(&models.Person{}), q, &persons)
	if err != nil {
		return nil, 0, err
	}
	return persons, total, nil
}
