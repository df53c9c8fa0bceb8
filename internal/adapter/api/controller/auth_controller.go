package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/dto"
	"github.com/hugohenrick/tuckshop/internal/service"
	"github.com/hugohenrick/tuckshop/pkg/auth"
	"github.com/hugohenrick/tuckshop/pkg/logger"
)

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	authService     *service.AuthService
	employeeService *service.EmployeeService
	logger          logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(authService *service.AuthService, employeeService *service.EmployeeService, logger logger.Logger) *AuthController {
	return &AuthController{
		authService:     authService,
		employeeService: employeeService,
		logger:          logger,
	}
}

// Login autentica um funcionário pelo PIN e retorna um token JWT
// @Summary Autentica um funcionário
// @Description Verifica o PIN do funcionário e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "PIN do funcionário"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		bindError(ctx, err)
		return
	}

	res, err := c.authService.Login(ctx, request.PIN)
	if err != nil {
		respondError(ctx, c.logger, "Credenciais inválidas", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Employee:    dto.ToEmployeeResponse(res.Employee),
		AccessToken: res.Token,
		ExpiresAt:   res.ExpiresAt,
	})
}

// Me retorna o funcionário autenticado
// @Summary Funcionário autenticado
// @Description Retorna os dados do funcionário dono do token
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.EmployeeResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims, ok := auth.CurrentEmployee(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", ""))
		return
	}

	e, err := c.employeeService.Get(ctx, claims.EmployeeID)
	if err != nil {
		respondError(ctx, c.logger, "Funcionário não encontrado", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToEmployeeResponse(e))
}
