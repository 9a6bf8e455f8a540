package domain

import "fmt"

// Sentinel errors for the domain layer.
var (
	ErrInvalidInput      = fmt.Errorf("invalid input")
	ErrProviderError     = fmt.Errorf("provider error")
	ErrSearchUnavailable = fmt.Errorf("search provider unavailable")
	ErrRateLimit         = fmt.Errorf("rate limit exceeded")
)

// WrapOp adds operation context to an error using fmt.Errorf wrapping.
// Returns nil if err is nil, enabling idiomatic use: return domain.WrapOp("op", err)
func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
