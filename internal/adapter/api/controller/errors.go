package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/dto"
	"github.com/hugohenrick/tuckshop/internal/domain"
	"github.com/hugohenrick/tuckshop/pkg/auth"
	"github.com/hugohenrick/tuckshop/pkg/logger"
)

// statusFor mapeia o erro de domínio para o status HTTP
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCompositeCycle):
		return http.StatusConflict
	case domain.IsBusinessRule(err):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// respondError escreve o erro no formato padrão. Erros fora do domínio são
// registrados e retornados como 500.
func respondError(ctx *gin.Context, log logger.Logger, message string, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		log.Error(message, "error", err, "path", ctx.FullPath())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, message, err.Error()))
		return
	}

	status := statusFor(de)
	resp := dto.NewErrorResponse(status, message, de.Error())
	resp.Kind = string(de.Kind)
	ctx.JSON(status, resp)
}

// bindError responde 400 para um corpo inválido
func bindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
}

// currentEmployeeID retorna o ID do funcionário autenticado
func currentEmployeeID(ctx *gin.Context) string {
	claims, ok := auth.CurrentEmployee(ctx)
	if !ok {
		return ""
	}
	return claims.EmployeeID
}
