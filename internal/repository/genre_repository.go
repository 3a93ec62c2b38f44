package repository

import (
	"context"

	"movie-admin/internal/admin"
	"movie-admin/internal/database"
	"movie-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *models.Genre) error
	Update(ctx context.Context, genre *models.Genre) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Genre, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Genre, error)
	FindAll(ctx context.Context, q ListQuery) ([]models.Genre, int64, error)
}

type genreRepository struct {
	baseRepository
}

func NewGenreRepository(db *database.Database, a *admin.ModelAdmin) GenreRepository {
	return &genreRepository{baseRepository: newBaseRepository(db, a)}
}

func (r *genreRepository) Create(ctx context.Context, genre *models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Create(genre).Error)
}

func (r *genreRepository) Update(ctx context.Context, genre *models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Save(genre).Error)
}

// Delete removes the genre together with its film work links.
func (r *genreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("genre_id = ?", id).Delete(&models.GenreFilmWork{}).Error; err != nil {
			return translate(err)
		}
		result := tx.Where("id = ?", id).Delete(&models.Genre{})
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *genreRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genre models.Genre
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&genre).Error; err != nil {
		return nil, translate(err)
	}
	return &genre, nil
}

func (r *genreRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genres []models.Genre
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&genres).Error
	return genres, translate(err)
}

func (r *genreRepository) FindAll(ctx context.Context, q ListQuery) ([]models.Genre, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genres []models.Genre
	total, err := r.list(r.db.WithContext(ctx).Model(&models.Genre{}), q, &genres)
	if err != nil {
		return nil, 0, err
	}
	return genres, total, nil
}
