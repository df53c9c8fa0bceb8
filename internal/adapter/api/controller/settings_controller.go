package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/dto"
	"github.com/hugohenrick/tuckshop/internal/domain/settings"
	"github.com/hugohenrick/tuckshop/internal/service"
	"github.com/hugohenrick/tuckshop/pkg/logger"
)

// SettingsController gerencia as configurações e as ferramentas de demonstração
type SettingsController struct {
	settings   *service.SettingsService
	simulation *service.SimulationService
	logger     logger.Logger
}

// NewSettingsController cria uma nova instância de SettingsController
func NewSettingsController(settings *service.SettingsService, simulation *service.SimulationService, logger logger.Logger) *SettingsController {
	return &SettingsController{
		settings:   settings,
		simulation: simulation,
		logger:     logger,
	}
}

// Get retorna as configurações
// @Summary Configurações
// @Tags settings
// @Produce json
// @Security Bearer
// @Success 200 {object} settings.Settings
// @Router /settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	cfg, err := c.settings.Get(ctx)
	if err != nil {
		respondError(ctx, c.logger, "erro ao ler configurações", err)
		return
	}
	ctx.JSON(http.StatusOK, cfg)
}

// Update altera as configurações
// @Summary Alterar configurações
// @Tags settings
// @Accept json
// @Produce json
// @Security Bearer
// @Param settings body dto.SettingsRequest true "Configurações"
// @Success 200 {object} settings.Settings
// @Failure 400 {object} dto.ErrorResponse
// @Router /settings [put]
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.SettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	cfg, err := c.settings.Update(ctx, settings.Settings{Currency: req.Currency})
	if err != nil {
		respondError(ctx, c.logger, "erro ao alterar configurações", err)
		return
	}
	ctx.JSON(http.StatusOK, cfg)
}

// Simulate substitui alunos e vendas por dados de demonstração
// @Summary Gerar dados de demonstração
// @Description Substitui alunos e vendas por dados gerados. Estoque e catálogo não mudam.
// @Tags settings
// @Accept json
// @Produce json
// @Security Bearer
// @Param simulation body dto.SimulationRequest false "Tamanho da simulação"
// @Success 200 {object} service.SimulationResult
// @Failure 400 {object} dto.ErrorResponse
// @Router /settings/simulate [post]
func (c *SettingsController) Simulate(ctx *gin.Context) {
	var req dto.SimulationRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			bindError(ctx, err)
			return
		}
	}

	res, err := c.simulation.Seed(ctx, service.SimulationRequest{Students: req.Students, Days: req.Days})
	if err != nil {
		respondError(ctx, c.logger, "erro ao gerar simulação", err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}
