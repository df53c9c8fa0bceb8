package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	err := NewError("settlement.Settle", KindInsufficientStock, "p1", "")
	assert.Equal(t, "settlement.Settle [p1]: estoque insuficiente", err.Error())
	assert.ErrorIs(t, err, ErrInsufficientStock)

	wrapped := fmt.Errorf("checkout: %w", err)
	assert.Equal(t, KindInsufficientStock, KindOf(wrapped))
	assert.True(t, IsBusinessRule(wrapped))
	assert.False(t, IsNotFound(wrapped))

	inv := Invalid("inventory.Adjust", "quantidade %d inválida", 0)
	assert.Equal(t, "inventory.Adjust: quantidade 0 inválida", inv.Error())
	assert.ErrorIs(t, inv, ErrInvalidRequest)

	assert.True(t, IsNotFound(NewError("op", KindUnknownSupplier, "sup9", "")))
	assert.Equal(t, Kind(""), KindOf(errors.New("io")))
}
