package rituals

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrInvalidMonth         = errors.New("mês inválido")
	ErrInvalidYear          = errors.New("ano inválido")
	ErrInvalidStatus        = errors.New("status inválido")
	ErrSalespersonRequired  = errors.New("vendedor é obrigatório")
	ErrInvalidDate          = errors.New("data inválida")
	ErrMeetingAlreadyExists = errors.New("já existe uma RMR para este mês")

	// Erros de recurso
	ErrMeetingNotFound = errors.New("RMR não encontrada")
	ErrSessionNotFound = errors.New("FIVI não encontrada")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateID        = errors.New("erro ao gerar id")
)

// RitualError é um erro com contexto adicional para RMR e FIVI
type RitualError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *RitualError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RitualError) Unwrap() error {
	return e.Err
}

func NewRitualError(err error, code string, details string) *RitualError {
	return &RitualError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
