package scoring

import "errors"

// Erros de validação do motor de risco
var (
	ErrAccountIDRequired   = errors.New("account ID is required")
	ErrMetricsDateRequired = errors.New("metrics date is required")
	ErrInvalidBaselines    = errors.New("baseline values must be positive")
	ErrInvalidDateRange    = errors.New("end date must not precede start date")
)
