package api

import (
	"encoding/csv"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/business-directory-api/internal/config"
	"github.com/business-directory-api/internal/models"
	"github.com/business-directory-api/internal/parser"
	"github.com/business-directory-api/internal/service"
	"github.com/business-directory-api/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BulkUploadHandler handles the bulk onboarding endpoints
type BulkUploadHandler struct {
	services *service.Services
	store    storage.BlobStore
	cfg      *config.Config
	log      zerolog.Logger
}

// NewBulkUploadHandler creates a new BulkUploadHandler
func NewBulkUploadHandler(services *service.Services, store storage.BlobStore, cfg *config.Config, log zerolog.Logger) *BulkUploadHandler {
	return &BulkUploadHandler{
		services: services,
		store:    store,
		cfg:      cfg,
		log:      log.With().Str("handler", "bulk_upload").Logger(),
	}
}

// Preview handles POST /api/admin/bulk-upload/preview
// Parses the CSV and computes expected outcomes without writing anything.
func (h *BulkUploadHandler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	batch, ok := h.readBatch(c, false)
	if !ok {
		return
	}

	preview, err := h.services.Import.Preview(ctx, batch)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"preview": preview})
}

// Confirm handles POST /api/admin/bulk-upload
// Executes the batch: auth accounts, profiles, products, gallery.
func (h *BulkUploadHandler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	if c.PostForm("confirmed") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmed=true is required"})
		return
	}

	tier := models.Tier(c.PostForm("tier"))
	if !models.ValidTiers[tier] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tier must be one of: free, premium, business"})
		return
	}

	// Confirm is the phase that persists, so manual-mode images are
	// saved through the blob store here, not at preview.
	batch, ok := h.readBatch(c, true)
	if !ok {
		return
	}

	result, err := h.services.Import.Confirm(ctx, batch, tier)
	if err != nil {
		h.log.Error().Err(err).Msg("Bulk upload failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.log.Info().
		Int("profiles_created", result.ProfilesCreated).
		Int("products_created", result.ProductsCreated).
		Int("errors", len(result.Errors)).
		Str("tier", string(tier)).
		Msg("Bulk upload confirmed")

	c.JSON(http.StatusOK, gin.H{"results": result})
}

// DefaultProducts handles POST /api/admin/get-default-products
func (h *BulkUploadHandler) DefaultProducts(c *gin.Context) {
	var req struct {
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": h.services.Import.DefaultProducts(req.Category)})
}

// GetRun handles GET /api/admin/bulk-upload/runs/:run_id
func (h *BulkUploadHandler) GetRun(c *gin.Context) {
	ctx := c.Request.Context()
	runID := c.Param("run_id")

	run, err := h.services.Run.GetRun(ctx, runID)
	if err != nil {
		h.log.Error().Err(err).Str("run_id", runID).Msg("Failed to get run")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get run"})
		return
	}
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}

	c.JSON(http.StatusOK, run)
}

// GetRunErrors handles GET /api/admin/bulk-upload/runs/:run_id/errors
func (h *BulkUploadHandler) GetRunErrors(c *gin.Context) {
	ctx := c.Request.Context()
	runID := c.Param("run_id")

	rowErrors, err := h.services.Run.GetRunErrors(ctx, runID)
	if err != nil {
		h.log.Error().Err(err).Str("run_id", runID).Msg("Failed to get run errors")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get errors"})
		return
	}

	if c.Query("format") == "csv" {
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=errors_%s.csv", runID))
		writer := csv.NewWriter(c.Writer)
		writer.Write([]string{"row", "step", "reason"})
		for _, e := range rowErrors {
			writer.Write([]string{strconv.Itoa(e.Row), e.Step, e.Reason})
		}
		writer.Flush()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id":      runID,
		"error_count": len(rowErrors),
		"errors":      rowErrors,
	})
}

// readBatch extracts the CSV and manual-mode image assignments from the
// multipart form. With save set, images go through the blob store and
// the batch carries their public URLs; otherwise only the client
// filenames travel, enough for precondition checks and preview labels.
// On failure it writes the error response and returns ok=false.
func (h *BulkUploadHandler) readBatch(c *gin.Context, save bool) (*models.ImportBatch, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file upload is required"})
		return nil, false
	}
	defer file.Close()

	if header.Size > h.cfg.Upload.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("file too large, max size is %d MB", h.cfg.Upload.MaxUploadSize/(1024*1024)),
		})
		return nil, false
	}

	mode := models.UploadMode(c.DefaultPostForm("uploadMode", string(models.UploadModeAuto)))
	if !models.ValidUploadModes[mode] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uploadMode must be one of: auto, manual"})
		return nil, false
	}

	rows, warnings := parser.Parse(file)
	if len(rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no valid rows in file", "details": warnings})
		return nil, false
	}
	if len(rows) > h.cfg.Upload.MaxRows {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("too many rows, max is %d", h.cfg.Upload.MaxRows),
		})
		return nil, false
	}

	batch := &models.ImportBatch{
		Rows:     rows,
		Warnings: warnings,
		Mode:     mode,
	}

	if mode == models.UploadModeManual {
		for i := 0; i < models.ManualProductImageCount; i++ {
			fh, err := c.FormFile(fmt.Sprintf("productImage%d", i))
			if err != nil {
				continue
			}
			url, ok := h.imageRef(c, fh, save)
			if !ok {
				return nil, false
			}
			batch.ProductImages = append(batch.ProductImages, url)
		}

		galleryCount, _ := strconv.Atoi(c.PostForm("galleryImageCount"))
		if galleryCount > models.MaxGalleryImages {
			galleryCount = models.MaxGalleryImages
		}
		for i := 0; i < galleryCount; i++ {
			fh, err := c.FormFile(fmt.Sprintf("galleryImage%d", i))
			if err != nil {
				continue
			}
			url, ok := h.imageRef(c, fh, save)
			if !ok {
				return nil, false
			}
			batch.GalleryImages = append(batch.GalleryImages, url)
		}
	}

	return batch, true
}

// imageRef resolves one uploaded image to either its stored public URL
// or, before confirm, just its client filename.
func (h *BulkUploadHandler) imageRef(c *gin.Context, fh *multipart.FileHeader, save bool) (string, bool) {
	if !save {
		return fh.Filename, true
	}

	src, err := fh.Open()
	if err != nil {
		h.log.Error().Err(err).Str("file", fh.Filename).Msg("Failed to open uploaded image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded image"})
		return "", false
	}
	defer src.Close()

	url, err := h.store.Save(c.Request.Context(), fh.Filename, src)
	if err != nil {
		h.log.Error().Err(err).Str("file", fh.Filename).Msg("Failed to store uploaded image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store uploaded image"})
		return "", false
	}
	return url, true
}
