package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	cause := errors.New("connection refused")

	assert.Equal(t,
		"[network] https://www.amazon.com.br/dp/B07XQXZXJC: falha na requisição: connection refused",
		NewNetwork("https://www.amazon.com.br/dp/B07XQXZXJC", "falha na requisição", cause).Error(),
	)
	assert.Equal(t,
		"[configuration] variáveis ausentes: AMAZON_TAG",
		NewConfiguration("variáveis ausentes: AMAZON_TAG", nil).Error(),
	)
}

func TestUnwrapAndIsType(t *testing.T) {
	cause := errors.New("timeout")
	err := fmt.Errorf("busca: %w", NewNetwork("amazon", "falha", cause))

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsType(err, TypeNetwork))
	assert.False(t, IsType(err, TypeDelivery))
	assert.False(t, IsType(cause, TypeNetwork))
}
