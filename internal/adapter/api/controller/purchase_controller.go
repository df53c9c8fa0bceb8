package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/dto"
	"github.com/hugohenrick/tuckshop/internal/domain/purchase"
	"github.com/hugohenrick/tuckshop/internal/service"
	"github.com/hugohenrick/tuckshop/pkg/logger"
)

// PurchaseController gerencia fornecedores e pedidos de compra
type PurchaseController struct {
	purchasing *service.PurchasingService
	logger     logger.Logger
}

// NewPurchaseController cria uma nova instância de PurchaseController
func NewPurchaseController(purchasing *service.PurchasingService, logger logger.Logger) *PurchaseController {
	return &PurchaseController{
		purchasing: purchasing,
		logger:     logger,
	}
}

// ListOrders lista os pedidos de compra
// @Summary Listar pedidos de compra
// @Tags purchasing
// @Produce json
// @Security Bearer
// @Param status query string false "draft, ordered ou received"
// @Success 200 {array} purchase.Order
// @Router /purchase-orders [get]
func (c *PurchaseController) ListOrders(ctx *gin.Context) {
	orders, err := c.purchasing.ListOrders(ctx, purchase.Status(ctx.Query("status")))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar pedidos", err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetOrder busca um pedido
// @Summary Buscar pedido de compra
// @Tags purchasing
// @Produce json
// @Security Bearer
// @Param id path string true "ID do pedido"
// @Success 200 {object} purchase.Order
// @Failure 404 {object} dto.ErrorResponse
// @Router /purchase-orders/{id} [get]
func (c *PurchaseController) GetOrder(ctx *gin.Context) {
	order, err := c.purchasing.GetOrder(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar pedido", err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// CreateOrder cria um pedido em rascunho
// @Summary Criar pedido de compra
// @Tags purchasing
// @Accept json
// @Produce json
// @Security Bearer
// @Param order body dto.PurchaseOrderRequest true "Pedido"
// @Success 201 {object} purchase.Order
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /purchase-orders [post]
func (c *PurchaseController) CreateOrder(ctx *gin.Context) {
	var req dto.PurchaseOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	order, err := c.purchasing.CreateOrder(ctx, service.CreateOrderRequest{
		SupplierID: req.SupplierID,
		Items:      req.ToItems(),
	})
	if err != nil {
		respondError(ctx, c.logger, "erro ao criar pedido", err)
		return
	}
	ctx.JSON(http.StatusCreated, order)
}

// MarkOrdered marca o pedido como enviado
// @Summary Enviar pedido de compra
// @Tags purchasing
// @Produce json
// @Security Bearer
// @Param id path string true "ID do pedido"
// @Success 200 {object} purchase.Order
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /purchase-orders/{id}/order [post]
func (c *PurchaseController) MarkOrdered(ctx *gin.Context) {
	order, err := c.purchasing.MarkOrdered(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao enviar pedido", err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// Receive dá entrada do pedido no estoque
// @Summary Receber pedido de compra
// @Description Soma as quantidades ao estoque e atualiza o custo. Receber de novo não altera nada.
// @Tags purchasing
// @Produce json
// @Security Bearer
// @Param id path string true "ID do pedido"
// @Success 200 {object} dto.ReceiveResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /purchase-orders/{id}/receive [post]
func (c *PurchaseController) Receive(ctx *gin.Context) {
	order, applied, err := c.purchasing.Receive(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao receber pedido", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ReceiveResponse{Order: order, Applied: applied})
}

// ListSuppliers lista os fornecedores
// @Summary Listar fornecedores
// @Tags purchasing
// @Produce json
// @Security Bearer
// @Success 200 {array} purchase.Supplier
// @Router /suppliers [get]
func (c *PurchaseController) ListSuppliers(ctx *gin.Context) {
	suppliers, err := c.purchasing.ListSuppliers(ctx)
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar fornecedores", err)
		return
	}
	ctx.JSON(http.StatusOK, suppliers)
}

// CreateSupplier cadastra um fornecedor
// @Summary Criar fornecedor
// @Tags purchasing
// @Accept json
// @Produce json
// @Security Bearer
// @Param supplier body dto.SupplierRequest true "Fornecedor"
// @Success 201 {object} purchase.Supplier
// @Failure 400 {object} dto.ErrorResponse
// @Router /suppliers [post]
func (c *PurchaseController) CreateSupplier(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	supplier, err := c.purchasing.CreateSupplier(ctx, service.CreateSupplierRequest{
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
	})
	if err != nil {
		respondError(ctx, c.logger, "erro ao criar fornecedor", err)
		return
	}
	ctx.JSON(http.StatusCreated, supplier)
}
