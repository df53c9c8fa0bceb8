package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/dto"
	"github.com/hugohenrick/tuckshop/internal/service"
	"github.com/hugohenrick/tuckshop/pkg/logger"
)

// InventoryController gerencia ajustes e contagens de estoque
type InventoryController struct {
	inventory *service.InventoryService
	logger    logger.Logger
}

// NewInventoryController cria uma nova instância de InventoryController
func NewInventoryController(inventory *service.InventoryService, logger logger.Logger) *InventoryController {
	return &InventoryController{
		inventory: inventory,
		logger:    logger,
	}
}

// Adjust registra um ajuste manual
// @Summary Ajustar estoque
// @Tags inventory
// @Accept json
// @Produce json
// @Security Bearer
// @Param adjustment body dto.AdjustmentRequest true "Ajuste"
// @Success 201 {object} inventory.Adjustment
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /inventory/adjustments [post]
func (c *InventoryController) Adjust(ctx *gin.Context) {
	var req dto.AdjustmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	adj, err := c.inventory.Adjust(ctx, service.AdjustRequest{
		ProductID:      req.ProductID,
		VariantID:      req.VariantID,
		QuantityChange: req.QuantityChange,
		Reason:         req.Reason,
		EmployeeID:     currentEmployeeID(ctx),
		Note:           req.Note,
	})
	if err != nil {
		respondError(ctx, c.logger, "erro ao ajustar estoque", err)
		return
	}
	ctx.JSON(http.StatusCreated, adj)
}

// Stocktake registra uma contagem física
// @Summary Contagem de estoque
// @Tags inventory
// @Accept json
// @Produce json
// @Security Bearer
// @Param count body dto.StocktakeRequest true "Contagem"
// @Success 201 {object} inventory.Adjustment
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /inventory/stocktake [post]
func (c *InventoryController) Stocktake(ctx *gin.Context) {
	var req dto.StocktakeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	adj, err := c.inventory.Stocktake(ctx, service.StocktakeRequest{
		ProductID:   req.ProductID,
		VariantID:   req.VariantID,
		ActualStock: *req.ActualStock,
		EmployeeID:  currentEmployeeID(ctx),
		Note:        req.Note,
	})
	if err != nil {
		respondError(ctx, c.logger, "erro ao registrar contagem", err)
		return
	}
	ctx.JSON(http.StatusCreated, adj)
}

// List lista o log de ajustes
// @Summary Listar ajustes
// @Tags inventory
// @Produce json
// @Security Bearer
// @Param product_id query string false "Filtrar por produto"
// @Success 200 {array} inventory.Adjustment
// @Router /inventory/adjustments [get]
func (c *InventoryController) List(ctx *gin.Context) {
	log, err := c.inventory.ListAdjustments(ctx, ctx.Query("product_id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar ajustes", err)
		return
	}
	ctx.JSON(http.StatusOK, log)
}
