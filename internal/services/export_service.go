package services

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"movie-admin/internal/models"
	"movie-admin/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CatalogSnapshot is the document written by ExportCatalog.
type CatalogSnapshot struct {
	ExportedAt time.Time         `json:"exported_at"`
	FilmWorks  []models.FilmWork `json:"film_works"`
}

type ExportResult struct {
	ObjectName string    `json:"object_name"`
	URL        string    `json:"url"`
	FilmWorks  int       `json:"film_works"`
	ExportedAt time.Time `json:"exported_at"`
}

type ExportService interface {
	ExportCatalog(ctx context.Context) (*ExportResult, error)
}

type exportService struct {
	repo   repository.FilmWorkRepository
	store  ObjectStore
	prefix string
	logger *logrus.Logger
	now    func() time.Time
}

// NewExportService returns a service that uploads catalog snapshots to
// store. A nil store makes every export fail with ErrStorageDisabled.
func NewExportService(repo repository.FilmWorkRepository, store ObjectStore, prefix string, logger *logrus.Logger) ExportService {
	return &exportService{
		repo:   repo,
		store:  store,
		prefix: prefix,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *exportService) ExportCatalog(ctx context.Context) (*ExportResult, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}

	filmWorks, err := s.repo.FindAllForExport(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load film works: %w", err)
	}
	if filmWorks == nil {
		filmWorks = []models.FilmWork{}
	}

	exportedAt := s.now()
	data, err := json.Marshal(CatalogSnapshot{ExportedAt: exportedAt, FilmWorks: filmWorks})
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	name := fmt.Sprintf("film_work_%s_%s.json", exportedAt.Format("20060102T150405Z"), uuid.New().String()[:8])
	objectName := path.Join(s.prefix, name)

	downloadURL, err := s.store.PutObject(ctx, objectName, data, "application/json")
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"object":     objectName,
		"film_works": len(filmWorks),
	}).Info("Catalog exported")

	return &ExportResult{
		ObjectName: objectName,
		URL:        downloadURL,
		FilmWorks:  len(filmWorks),
		ExportedAt: exportedAt,
	}, nil
}
