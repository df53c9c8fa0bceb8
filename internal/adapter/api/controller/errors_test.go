package controller

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hugohenrick/tuckshop/internal/domain"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"requisição inválida", domain.Invalid("op", "carrinho vazio"), http.StatusBadRequest},
		{"PIN inválido", domain.NewError("op", domain.KindInvalidCredentials, "", ""), http.StatusUnauthorized},
		{"produto inexistente", domain.NewError("op", domain.KindUnknownProduct, "p9", ""), http.StatusNotFound},
		{"fornecedor inexistente", domain.NewError("op", domain.KindUnknownSupplier, "sup9", ""), http.StatusNotFound},
		{"ciclo em composto", domain.NewError("op", domain.KindCompositeCycle, "combo", ""), http.StatusConflict},
		{"limite diário", domain.NewError("op", domain.KindDailyLimitExceeded, "s1", ""), http.StatusUnprocessableEntity},
		{"estoque encapsulado", fmt.Errorf("venda: %w", domain.NewError("op", domain.KindInsufficientStock, "p1", "")), http.StatusUnprocessableEntity},
		{"erro de infraestrutura", errors.New("conexão recusada"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
