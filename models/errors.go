package models

import "fmt"

// Error taxonomy. Controllers match these with errors.Is/errors.As and
// map them to HTTP status codes; nothing below is retried by the core.

// ConfigurationError means a required credential or id is missing.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("server configuration error: %s is not set", e.Field)
}

// UpstreamDataError means the vendor catalog batch was absent, empty,
// or unusable as a whole. Individual malformed records are filtered by
// the normalizer instead of raising this.
type UpstreamDataError struct {
	Detail string
}

func (e *UpstreamDataError) Error() string {
	return "upstream catalog error: " + e.Detail
}

// ValidationError is a recoverable, user-facing precondition failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// GeocodeError covers an unresolvable address or an address outside
// the delivery radius. Kept distinct from ValidationError so the
// storefront can message it separately.
type GeocodeError struct {
	Message string
}

func (e *GeocodeError) Error() string { return e.Message }

// PaymentProviderError wraps a failure from the payment collaborator.
type PaymentProviderError struct {
	Err error
}

func (e *PaymentProviderError) Error() string {
	return "payment provider error: " + e.Err.Error()
}

func (e *PaymentProviderError) Unwrap() error { return e.Err }
