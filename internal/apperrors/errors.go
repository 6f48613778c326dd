package apperrors

import (
	"errors"
	"fmt"
)

// ErrorType classifica a falha
type ErrorType string

const (
	// TypeConfiguration indica configuração ausente ou inválida (fatal)
	TypeConfiguration ErrorType = "configuration"
	// TypeNetwork indica falha de transporte ou status HTTP inesperado
	TypeNetwork ErrorType = "network"
	// TypeParsing indica HTML que não pôde ser lido
	TypeParsing ErrorType = "parsing"
	// TypeDelivery indica falha ao entregar a mensagem no Telegram
	TypeDelivery ErrorType = "delivery"
)

// Error é o erro tipado usado entre os componentes
type Error struct {
	Type    ErrorType
	Source  string
	Message string
	Err     error
}

// Error implementa a interface error
func (e *Error) Error() string {
	if e.Source == "" {
		if e.Err != nil {
			return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
		}
		return fmt.Sprintf("[%s] %s", e.Type, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s: %v", e.Type, e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Source, e.Message)
}

// Unwrap retorna o erro original
func (e *Error) Unwrap() error {
	return e.Err
}

// New cria um Error do tipo informado
func New(errType ErrorType, source, message string, err error) *Error {
	return &Error{
		Type:    errType,
		Source:  source,
		Message: message,
		Err:     err,
	}
}

// NewConfiguration cria um erro de configuração
func NewConfiguration(message string, err error) *Error {
	return New(TypeConfiguration, "", message, err)
}

// NewNetwork cria um erro de rede ou status HTTP
func NewNetwork(source, message string, err error) *Error {
	return New(TypeNetwork, source, message, err)
}

// NewParsing cria um erro de leitura do HTML
func NewParsing(source, message string, err error) *Error {
	return New(TypeParsing, source, message, err)
}

// NewDelivery cria um erro de entrega no Telegram
func NewDelivery(source, message string, err error) *Error {
	return New(TypeDelivery, source, message, err)
}

// IsType informa se algum erro da cadeia é um *Error do tipo informado
func IsType(err error, errType ErrorType) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}
