package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/typoapparel/tbm_backend/internal/apperrors"
	portssvc "github.com/typoapparel/tbm_backend/internal/core/ports/services"
	"github.com/typoapparel/tbm_backend/internal/dto"
	"github.com/typoapparel/tbm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// importBodyLimit caps import payloads at 16 MiB.
const importBodyLimit = 16 << 20

// resetConfirmPhrase must be echoed back by the client before the store is
// erased.
const resetConfirmPhrase = "ERASE"

// backupHandler handles HTTP requests for backup export/import, the CSV
// projections, and the full store reset.
type backupHandler struct {
	backupService portssvc.BackupSvcFacade
}

func newBackupHandler(bs portssvc.BackupSvcFacade) *backupHandler {
	return &backupHandler{
		backupService: bs,
	}
}

// registerBackupRoutes registers routes related to backup and system reset.
func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade) {
	h := newBackupHandler(backupService)

	backup := rg.Group("/backup")
	{
		backup.GET("/export", h.exportBackup)
		backup.GET("/export/transactions.csv", h.exportTransactionsCSV)
		backup.GET("/export/inventory.csv", h.exportInventoryCSV)
		backup.POST("/import", h.importBackup)
	}

	system := rg.Group("/system")
	{
		system.POST("/reset", h.resetAll)
	}
}

func (h *backupHandler) exportBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payload, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export backup in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export backup"})
		return
	}

	logger.Info("Backup exported successfully",
		slog.Int("transactions", len(payload.Transactions)),
		slog.Int("inventory", len(payload.Inventory)),
		slog.Int("customers", len(payload.Customers)))
	c.Header("Content-Disposition", `attachment; filename="typo-backup.json"`)
	c.JSON(http.StatusOK, payload)
}

func (h *backupHandler) exportTransactionsCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, err := h.backupService.ExportTransactionsCSV(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export transactions CSV in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export transactions CSV"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (h *backupHandler) exportInventoryCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, err := h.backupService.ExportInventoryCSV(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export inventory CSV in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export inventory CSV"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="inventory.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// importBackup accepts either the current backup object or the legacy bare
// transaction array as the raw request body.
func (h *backupHandler) importBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, importBodyLimit))
	if err != nil {
		logger.Warn("Failed to read import body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	result, err := h.backupService.Import(c.Request.Context(), payload)
	if err != nil {
		if errors.Is(err, apperrors.ErrParseFailure) || errors.Is(err, apperrors.ErrInvalidFormat) {
			logger.Warn("Backup import rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to import backup in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import backup"})
		}
		return
	}

	logger.Info("Backup imported successfully",
		slog.Bool("legacy", result.Legacy),
		slog.Any("replaced", result.Replaced))
	c.JSON(http.StatusOK, result)
}

// resetAll erases every stored collection. The client must echo the confirm
// phrase; anything else is rejected before any data is touched.
func (h *backupHandler) resetAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ResetAll", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if req.Confirm != resetConfirmPhrase {
		logger.Warn("Reset rejected, confirm phrase mismatch")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reset requires confirm phrase " + resetConfirmPhrase})
		return
	}

	if err := h.backupService.ResetAll(c.Request.Context()); err != nil {
		logger.Error("Failed to reset store in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset store"})
		return
	}

	logger.Info("Store reset successfully")
	c.Status(http.StatusNoContent)
}
