package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/dto"
	"github.com/hugohenrick/tuckshop/internal/domain/employee"
	"github.com/hugohenrick/tuckshop/internal/service"
	"github.com/hugohenrick/tuckshop/internal/settlement"
	"github.com/hugohenrick/tuckshop/pkg/auth"
	"github.com/hugohenrick/tuckshop/pkg/logger"
)

// CheckoutController recebe as vendas do PDV
type CheckoutController struct {
	checkout *service.CheckoutService
	logger   logger.Logger
}

// NewCheckoutController cria uma nova instância de CheckoutController
func NewCheckoutController(checkout *service.CheckoutService, logger logger.Logger) *CheckoutController {
	return &CheckoutController{
		checkout: checkout,
		logger:   logger,
	}
}

// Settle liquida uma venda
// @Summary Liquidar venda
// @Description Valida o carrinho e grava a venda, a baixa de estoque e o débito na carteira numa única operação
// @Tags checkout
// @Accept json
// @Produce json
// @Security Bearer
// @Param sale body dto.CheckoutRequest true "Carrinho e forma de pagamento"
// @Success 201 {object} transaction.Transaction
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /checkout [post]
func (c *CheckoutController) Settle(ctx *gin.Context) {
	var req dto.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	if req.Discount.IsPositive() {
		if claims, ok := auth.CurrentEmployee(ctx); !ok || !claims.Can(employee.CapApplyDiscounts) {
			ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Acesso negado",
				"Permissão necessária: "+string(employee.CapApplyDiscounts)))
			return
		}
	}

	cart := make([]settlement.CartLine, 0, len(req.Items))
	for _, it := range req.Items {
		cart = append(cart, settlement.CartLine{ProductID: it.ProductID, VariantID: it.VariantID, Quantity: it.Quantity})
	}

	tx, err := c.checkout.Settle(ctx, settlement.Request{
		Cart:          cart,
		StudentID:     req.StudentID,
		PaymentMethod: req.PaymentMethod,
		EmployeeID:    currentEmployeeID(ctx),
		Discount:      req.Discount,
	})
	if err != nil {
		respondError(ctx, c.logger, "venda recusada", err)
		return
	}
	ctx.JSON(http.StatusCreated, tx)
}
