package api

import (
	"net/http"

	"github.com/business-directory-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ExportHandler handles directory export endpoints
type ExportHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(services *service.Services, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		services: services,
		log:      log.With().Str("handler", "export").Logger(),
	}
}

// StreamExport handles GET /api/admin/export?resource=...&format=...
// Streams the export directly to the response
func (h *ExportHandler) StreamExport(c *gin.Context) {
	ctx := c.Request.Context()

	resource := c.DefaultQuery("resource", "profiles")
	if resource != "profiles" && resource != "products" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resource must be one of: profiles, products"})
		return
	}

	format := c.DefaultQuery("format", "ndjson")
	if format != "ndjson" && format != "csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be one of: ndjson, csv"})
		return
	}

	// CSV round-trips through the bulk upload format, profiles only
	if format == "csv" && resource != "profiles" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV format only supported for profiles export"})
		return
	}

	h.log.Info().
		Str("resource", resource).
		Str("format", format).
		Msg("Starting streaming export")

	var err error
	switch resource {
	case "profiles":
		err = h.services.Export.StreamProfiles(ctx, c.Writer, format)
	case "products":
		err = h.services.Export.StreamProducts(ctx, c.Writer, format)
	}

	if err != nil {
		h.log.Error().Err(err).Str("resource", resource).Msg("Export failed")
		// Can't return error JSON after streaming has started
		return
	}
}
