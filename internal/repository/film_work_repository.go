package repository

import (
	"context"
	"time"

	"movie-admin/internal/admin"
	"movie-admin/internal/database"
	"movie-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FilmWorkRepository interface {
	// Create inserts the film work and the links in GenreFilmWorks and PersonFilmWorks.
	Create(ctx context.Context, filmWork *models.FilmWork) error
	// Update saves the film work and makes its stored links match the given ones.
	Update(ctx context.Context, filmWork *models.FilmWork) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.FilmWork, error)
	FindAll(ctx context.Context, q ListQuery) ([]models.FilmWork, int64, error)
	FindAllForExport(ctx context.Context) ([]models.FilmWork, error)
}

type filmWorkRepository struct {
	baseRepository
}

func NewFilmWorkRepository(db *database.Database, a *admin.ModelAdmin) FilmWorkRepository {
	return &filmWorkRepository{baseRepository: newBaseRepository(db, a)}
}

func (r *filmWorkRepository) Create(ctx context.Context, filmWork *models.FilmWork) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(filmWork).Error; err != nil {
			return translate(err)
		}
		if err := createGenreLinks(tx, filmWork.ID, filmWork.GenreFilmWorks); err != nil {
			return err
		}
		return createPersonLinks(tx, filmWork.ID, filmWork.PersonFilmWorks)
	})
}

func (r *filmWorkRepository) Update(ctx context.Context, filmWork *models.FilmWork) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.FilmWork{}).Where("id = ?", filmWork.ID).Updates(map[string]interface{}{
			"title":         filmWork.Title,
			"description":   filmWork.Description,
			"creation_date": filmWork.CreationDate,
			"rating":        filmWork.Rating,
			"type":          filmWork.Type,
			"modified_at":   tx.NowFunc(),
		})
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		genres, err := syncGenreLinks(tx, filmWork.ID, filmWork.GenreFilmWorks)
		if err != nil {
			return err
		}
		persons, err := syncPersonLinks(tx, filmWork.ID, filmWork.PersonFilmWorks)
		if err != nil {
			return err
		}
		filmWork.GenreFilmWorks = genres
		filmWork.PersonFilmWorks = persons
		return nil
	})
}

// Delete removes the film work and every genre and person link pointing to it.
func (r *filmWorkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("film_work_id = ?", id).Delete(&models.GenreFilmWork{}).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("film_work_id = ?", id).Delete(&models.PersonFilmWork{}).Error; err != nil {
			return translate(err)
		}
		result := tx.Where("id = ?", id).Delete(&models.FilmWork{})
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *filmWorkRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.FilmWork, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var filmWork models.FilmWork
	err := preloadLinks(r.db.WithContext(ctx)).Where("id = ?", id).First(&filmWork).Error
	if err != nil {
		return nil, translate(err)
	}
	return &filmWork, nil
}

// FindAll returns one admin list page with the admin's prefetched relations.
func (r *filmWorkRepository) FindAll(ctx context.Context, q ListQuery) ([]models.FilmWork, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var filmWorks []models.FilmWork
	query := r.admin.ApplyPrefetch(r.db.WithContext(ctx).Model(&models.FilmWork{}))
	total, err := r.list(query, q, &filmWorks)
	if err != nil {
		return nil, 0, err
	}
	return filmWorks, total, nil
}

func (r *filmWorkRepository) FindAllForExport(ctx context.Context) ([]models.FilmWork, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var filmWorks []models.FilmWork
	err := preloadLinks(r.db.WithContext(ctx)).Order("title ASC").Order("id ASC").Find(&filmWorks).Error
	return filmWorks, translate(err)
}

func preloadLinks(db *gorm.DB) *gorm.DB {
	return db.
		Preload("GenreFilmWorks", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC, id ASC") }).
		Preload("GenreFilmWorks.Genre").
		Preload("PersonFilmWorks", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC, id ASC") }).
		Preload("PersonFilmWorks.Person")
}

func createGenreLinks(tx *gorm.DB, filmWorkID uuid.UUID, links []models.GenreFilmWork) error {
	if len(links) == 0 {
		return nil
	}
	// links created together keep their request order
	base := tx.NowFunc()
	for i := range links {
		links[i].FilmWorkID = filmWorkID
		links[i].CreatedAt = base.Add(time.Duration(i) * time.Microsecond)
	}
	return translate(tx.Omit(clause.Associations).Create(&links).Error)
}

func createPersonLinks(tx *gorm.DB, filmWorkID uuid.UUID, links []models.PersonFilmWork) error {
	if len(links) == 0 {
		return nil
	}
	// links created together keep their request order
	base := tx.NowFunc()
	for i := range links {
		links[i].FilmWorkID = filmWorkID
		links[i].CreatedAt = base.Add(time.Duration(i) * time.Microsecond)
	}
	return translate(tx.Omit(clause.Associations).Create(&links).Error)
}

// syncGenreLinks keeps links whose genre is still wanted, removes the rest
// and inserts the missing ones. Kept links retain their id and created_at.
func syncGenreLinks(tx *gorm.DB, filmWorkID uuid.UUID, wanted []models.GenreFilmWork) ([]models.GenreFilmWork, error) {
	var existing []models.GenreFilmWork
	if err := tx.Where("film_work_id = ?", filmWorkID).Order("created_at ASC, id ASC").Find(&existing).Error; err != nil {
		return nil, translate(err)
	}

	wantedByGenre := make(map[uuid.UUID]bool, len(wanted))
	for _, w := range wanted {
		wantedByGenre[w.GenreID] = true
	}

	kept := make([]models.GenreFilmWork, 0, len(wanted))
	present := make(map[uuid.UUID]bool, len(existing))
	var stale []uuid.UUID
	for _, e := range existing {
		if wantedByGenre[e.GenreID] {
			kept = append(kept, e)
			present[e.GenreID] = true
			continue
		}
		stale = append(stale, e.ID)
	}

	if len(stale) > 0 {
		if err := tx.Where("id IN ?", stale).Delete(&models.GenreFilmWork{}).Error; err != nil {
			return nil, translate(err)
		}
	}

	var added []models.GenreFilmWork
	for _, w := range wanted {
		if present[w.GenreID] {
			continue
		}
		present[w.GenreID] = true
		added = append(added, models.GenreFilmWork{GenreID: w.GenreID})
	}
	if err := createGenreLinks(tx, filmWorkID, added); err != nil {
		return nil, err
	}

	return append(kept, added...), nil
}

type personLinkKey struct {
	personID uuid.UUID
	role     string
}

func personKey(link models.PersonFilmWork) personLinkKey {
	return personLinkKey{personID: link.PersonID, role: link.RoleValue()}
}

// syncPersonLinks is syncGenreLinks for (person, role) pairs.
func syncPersonLinks(tx *gorm.DB, filmWorkID uuid.UUID, wanted []models.PersonFilmWork) ([]models.PersonFilmWork, error) {
	var existing []models.PersonFilmWork
	if err := tx.Where("film_work_id = ?", filmWorkID).Order("created_at ASC, id ASC").Find(&existing).Error; err != nil {
		return nil, translate(err)
	}

	wantedKeys := make(map[personLinkKey]bool, len(wanted))
	for _, w := range wanted {
		wantedKeys[personKey(w)] = true
	}

	kept := make([]models.PersonFilmWork, 0, len(wanted))
	present := make(map[personLinkKey]bool, len(existing))
	var stale []uuid.UUID
	for _, e := range existing {
		key := personKey(e)
		if wantedKeys[key] && !present[key] {
			kept = append(kept, e)
			present[key] = true
			continue
		}
		stale = append(stale, e.ID)
	}

	if len(stale) > 0 {
		if err := tx.Where("id IN ?", stale).Delete(&models.PersonFilmWork{}).Error; err != nil {
			return nil, translate(err)
		}
	}

	var added []models.PersonFilmWork
	for _, w := range wanted {
		key := personKey(w)
		if present[key] {
			continue
		}
		present[key] = true
		added = append(added, models.PersonFilmWork{PersonID: w.PersonID, Role: w.Role})
	}
	if err := createPersonLinks(tx, filmWorkID, added); err != nil {
		return nil, err
	}

	return append(kept, added...), nil
}
