package handlers

import (
	"movie-admin/internal/services"
	"movie-admin/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ExportHandler struct {
	exportService services.ExportService
	logger        *logrus.Logger
}

func NewExportHandler(exportService services.ExportService, logger *logrus.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		logger:        logger,
	}
}

// ExportFilmWorks godoc
// @Summary Export the catalog
// @Description Upload a JSON snapshot of every film work to MinIO/S3 and return a presigned download URL
// @Tags filmworks
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Failure 503 {object} utils.StandardResponse "Object storage is not configured"
// @Router /admin/filmworks/export [post]
func (h *ExportHandler) ExportFilmWorks(c *fiber.Ctx) error {
	result, err := h.exportService.ExportCatalog(c.Context())
	if err != nil {
		return errorResponse(c, h.logger, err, "Nothing to export")
	}

	h.logger.WithField("object", result.ObjectName).Info("Catalog export generated")
	return utils.SuccessResponse(c, fiber.StatusOK, "Catalog exported successfully", result)
}
