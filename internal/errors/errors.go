// Package errors provides the error types for the chat relay and client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrRelayUnreachable = errors.New("relay service unreachable")
	ErrNoContent        = errors.New("no content in response")
	ErrNotConfigured    = errors.New("provider not configured")
)

// ProviderErrorKind classifies a provider failure.
type ProviderErrorKind string

const (
	KindAuth      ProviderErrorKind = "auth"
	KindQuota     ProviderErrorKind = "quota"
	KindNetwork   ProviderErrorKind = "network"
	KindMalformed ProviderErrorKind = "malformed"
	KindUnknown   ProviderErrorKind = "unknown"
)

// ProviderError represents a failure reported by or while reaching the
// external text-generation provider.
type ProviderError struct {
	Kind    ProviderErrorKind
	Message string
	Wrapped error
}

func (e *ProviderError) Error() string {
	if e.Message == "" && e.Wrapped != nil {
		return fmt.Sprintf("provider error (%s): %v", e.Kind, e.Wrapped)
	}
	return fmt.Sprintf("provider error (%s): %s", e.Kind, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Wrapped
}

// Is allows comparison with other ProviderErrors regardless of detail.
func (e *ProviderError) Is(target error) bool {
	_, ok := target.(*ProviderError)
	return ok
}

// NewProviderError creates a ProviderError with the given kind.
func NewProviderError(kind ProviderErrorKind, message string) *ProviderError {
	return &ProviderError{Kind: kind, Message: message}
}

// WrapProviderError wraps an underlying error as a ProviderError.
func WrapProviderError(kind ProviderErrorKind, err error) *ProviderError {
	return &ProviderError{Kind: kind, Wrapped: err}
}

// IsProviderError reports whether err is a ProviderError of any kind.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

// ProviderKind returns the kind of a ProviderError, or KindUnknown for
// any other error.
func ProviderKind(err error) ProviderErrorKind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}

// IsAuthError reports whether err is an authentication/credential failure.
func IsAuthError(err error) bool {
	return ProviderKind(err) == KindAuth
}

// IsQuotaError reports whether err is a quota or rate-limit failure.
func IsQuotaError(err error) bool {
	return ProviderKind(err) == KindQuota
}

// IsNetworkError reports whether err is a network-level failure.
func IsNetworkError(err error) bool {
	return ProviderKind(err) == KindNetwork
}

// IsRelayUnreachable reports whether err means the relay service could
// not be reached at all (the client-side transport failure).
func IsRelayUnreachable(err error) bool {
	return errors.Is(err, ErrRelayUnreachable)
}
