package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// Códigos estables de error a nivel de solicitud.
const (
	CodeInvalidPeriod = "INVALID_PERIOD"
	CodeNoData        = "NO_DATA"
)

// DefaultUserMessage mensaje genérico para mostrar al usuario final.
const DefaultUserMessage = "No fue posible generar el reporte. Intente nuevamente."

// ClassifiedError error clasificado que se devuelve al caller de los reportes.
// Message es diagnóstico; UserMessage es el texto apto para la UI.
// Recoverable indica que el caller puede seguir operando; Retryable que la
// misma operación, sin cambios, podría tener éxito más adelante.
type ClassifiedError struct {
	Code        string
	Message     string
	UserMessage string
	Recoverable bool
	Retryable   bool
	Context     map[string]any

	cause error
}

// ClassifiedOption ajusta un ClassifiedError al construirlo.
type ClassifiedOption func(*ClassifiedError)

// WithUserMessage reemplaza el mensaje genérico de usuario.
func WithUserMessage(msg string) ClassifiedOption {
	return func(e *ClassifiedError) { e.UserMessage = msg }
}

// WithRecoverable fija el flag recoverable (por defecto true).
func WithRecoverable(v bool) ClassifiedOption {
	return func(e *ClassifiedError) { e.Recoverable = v }
}

// WithRetryable fija el flag retryable (por defecto false).
func WithRetryable(v bool) ClassifiedOption {
	return func(e *ClassifiedError) { e.Retryable = v }
}

// WithContext agrega un dato estructurado al error.
func WithContext(key string, value any) ClassifiedOption {
	return func(e *ClassifiedError) {
		if e.Context == nil {
			e.Context = make(map[string]any)
		}
		e.Context[key] = value
	}
}

// WithCause encadena un error sentinel para errors.Is.
func WithCause(err error) ClassifiedOption {
	return func(e *ClassifiedError) { e.cause = err }
}

// NewClassifiedError construye el error con los valores por defecto:
// UserMessage genérico, recoverable true, retryable false.
func NewClassifiedError(code, message string, opts ...ClassifiedOption) *ClassifiedError {
	e := &ClassifiedError{
		Code:        code,
		Message:     message,
		UserMessage: DefaultUserMessage,
		Recoverable: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *ClassifiedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ClassifiedError) Unwrap() error { return e.cause }

// AsClassified extrae un ClassifiedError de la cadena de err.
func AsClassified(err error) (*ClassifiedError, bool) {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// NewInvalidPeriodError período con formato distinto a YYYY-MM. El caller debe corregir la entrada.
func NewInvalidPeriodError(period string) *ClassifiedError {
	return NewClassifiedError(CodeInvalidPeriod,
		fmt.Sprintf("período inválido %q: se espera YYYY-MM", period),
		WithUserMessage("El período seleccionado no es válido."),
		WithRetryable(false),
		WithContext("period", period),
		WithCause(ErrInvalidInput),
	)
}

// NewNoDataError el período no tiene asientos; puede reintentarse cuando existan datos.
func NewNoDataError(period string) *ClassifiedError {
	return NewClassifiedError(CodeNoData,
		fmt.Sprintf("sin asientos para el período %s", period),
		WithUserMessage("No hay movimientos registrados para este período."),
		WithRetryable(true),
		WithContext("period", period),
		WithCause(ErrNotFound),
	)
}
