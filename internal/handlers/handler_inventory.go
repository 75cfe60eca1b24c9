package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/typoapparel/tbm_backend/internal/apperrors"
	portssvc "github.com/typoapparel/tbm_backend/internal/core/ports/services"
	"github.com/typoapparel/tbm_backend/internal/dto"
	"github.com/typoapparel/tbm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// inventoryHandler handles HTTP requests related to the stock room.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{
		inventoryService: is,
	}
}

// registerInventoryRoutes registers routes related to inventory items.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	inventory := rg.Group("/inventory")
	{
		inventory.POST("", h.createItem)
		inventory.GET("", h.listItems)
		inventory.PUT("/:id", h.updateItem)
		inventory.DELETE("/:id", h.deleteItem)
		inventory.POST("/:id/adjust", h.adjustStock)
		inventory.POST("/:id/quick-sell", h.quickSell)
	}
}

func (h *inventoryHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.inventoryService.CreateItem(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating inventory item", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create inventory item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inventory item"})
		}
		return
	}

	logger.Info("Inventory item created successfully",
		slog.String("item_id", created.ItemID),
		slog.Bool("logged_as_expense", req.LogAsExpense))
	c.JSON(http.StatusCreated, dto.ToInventoryItemResponse(created))
}

func (h *inventoryHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.inventoryService.ListItems(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list inventory from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list inventory"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListInventoryItemResponse(items))
}

func (h *inventoryHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	var req dto.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("item_id", itemID))

	updated, err := h.inventoryService.UpdateItem(c.Request.Context(), itemID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Inventory item not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating inventory item", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update inventory item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inventory item"})
		}
		return
	}

	logger.Info("Inventory item updated successfully")
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(updated))
}

func (h *inventoryHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")
	logger = logger.With(slog.String("item_id", itemID))

	if err := h.inventoryService.DeleteItem(c.Request.Context(), itemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Inventory item not found for delete")
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		} else {
			logger.Error("Failed to delete inventory item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inventory item"})
		}
		return
	}

	logger.Info("Inventory item deleted successfully")
	c.Status(http.StatusNoContent)
}

func (h *inventoryHandler) adjustStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdjustStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("item_id", itemID))

	updated, err := h.inventoryService.AdjustStock(c.Request.Context(), itemID, req.Delta)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Inventory item not found for adjust")
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		} else {
			logger.Error("Failed to adjust stock in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust stock"})
		}
		return
	}

	logger.Info("Stock adjusted successfully", slog.Int64("quantity", updated.Quantity))
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(updated))
}

func (h *inventoryHandler) quickSell(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	var req dto.QuickSellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for QuickSell", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("item_id", itemID))

	updated, err := h.inventoryService.QuickSell(c.Request.Context(), itemID, req.Quantity)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Inventory item not found for quick sell")
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		} else if errors.Is(err, apperrors.ErrInsufficientStock) {
			logger.Warn("Quick sell rejected, not enough stock", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error on quick sell", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to quick sell in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to quick sell"})
		}
		return
	}

	logger.Info("Quick sale recorded successfully", slog.Int64("quantity_sold", req.Quantity))
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(updated))
}
