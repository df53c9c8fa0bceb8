package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/dto"
	"github.com/hugohenrick/tuckshop/internal/service"
	"github.com/hugohenrick/tuckshop/pkg/logger"
)

// EmployeeController gerencia os funcionários
type EmployeeController struct {
	employees *service.EmployeeService
	logger    logger.Logger
}

// NewEmployeeController cria uma nova instância de EmployeeController
func NewEmployeeController(employees *service.EmployeeService, logger logger.Logger) *EmployeeController {
	return &EmployeeController{
		employees: employees,
		logger:    logger,
	}
}

func toEmployeeRequest(req dto.EmployeeRequest) service.EmployeeRequest {
	return service.EmployeeRequest{
		Name:        req.Name,
		PIN:         req.PIN,
		Role:        req.Role,
		Permissions: req.Permissions,
		Active:      req.Active,
	}
}

// List lista os funcionários
// @Summary Listar funcionários
// @Tags employees
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.EmployeeResponse
// @Router /employees [get]
func (c *EmployeeController) List(ctx *gin.Context) {
	all, err := c.employees.List(ctx)
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar funcionários", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToEmployeeResponses(all))
}

// Get busca um funcionário
// @Summary Buscar funcionário
// @Tags employees
// @Produce json
// @Security Bearer
// @Param id path string true "ID do funcionário"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /employees/{id} [get]
func (c *EmployeeController) Get(ctx *gin.Context) {
	e, err := c.employees.Get(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar funcionário", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToEmployeeResponse(e))
}

// Create cadastra um funcionário
// @Summary Criar funcionário
// @Tags employees
// @Accept json
// @Produce json
// @Security Bearer
// @Param employee body dto.EmployeeRequest true "Dados do funcionário"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /employees [post]
func (c *EmployeeController) Create(ctx *gin.Context) {
	var req dto.EmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	e, err := c.employees.Create(ctx, toEmployeeRequest(req))
	if err != nil {
		respondError(ctx, c.logger, "erro ao criar funcionário", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToEmployeeResponse(e))
}

// Update altera um funcionário
// @Summary Alterar funcionário
// @Tags employees
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do funcionário"
// @Param employee body dto.EmployeeRequest true "Dados do funcionário"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /employees/{id} [put]
func (c *EmployeeController) Update(ctx *gin.Context) {
	var req dto.EmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	e, err := c.employees.Update(ctx, ctx.Param("id"), toEmployeeRequest(req))
	if err != nil {
		respondError(ctx, c.logger, "erro ao alterar funcionário", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToEmployeeResponse(e))
}

// Deactivate desativa um funcionário
// @Summary Desativar funcionário
// @Tags employees
// @Security Bearer
// @Param id path string true "ID do funcionário"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /employees/{id} [delete]
func (c *EmployeeController) Deactivate(ctx *gin.Context) {
	if err := c.employees.Deactivate(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "erro ao desativar funcionário", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
