package provider

import (
	"errors"
	"strconv"
	"strings"
)

// ErrIO tags failures to read an input. They are never retried or treated as a
// provider declining.
var ErrIO = errors.New("i/o failure")

// ErrSyntax tags inputs that were readable but did not match a provider's grammar.
var ErrSyntax = errors.New("syntax failure")

// ErrNoProvider tags lookups for which no provider is registered.
var ErrNoProvider = errors.New("no provider")

// ErrAllProvidersFailed tags an exhausted fallback chain.
var ErrAllProvidersFailed = errors.New("all providers failed")

// Error is a parse failure with provenance.
//
// errors.Is matches both Kind and the wrapped cause.
type Error struct {
	// Kind is one of ErrIO, ErrSyntax, ErrNoProvider or ErrAllProvidersFailed.
	Kind error
	// Origin is the input the failure belongs to.
	Origin Origin
	// Format names the format of the failing provider, if any.
	Format string
	// Attempts counts the providers tried; set for ErrAllProvidersFailed.
	Attempts int
	// Err is the underlying cause, or the last failure of the chain.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var builder strings.Builder

	builder.WriteString(e.Origin.String())
	builder.WriteString(": ")

	if e.Format != "" {
		builder.WriteString(e.Format)
		builder.WriteString(": ")
	}

	if e.Kind != nil {
		builder.WriteString(e.Kind.Error())
	} else {
		builder.WriteString("parse failure")
	}

	if e.Attempts > 0 {
		builder.WriteString(" after ")
		builder.WriteString(strconv.Itoa(e.Attempts))
		builder.WriteString(" attempt")

		if e.Attempts > 1 {
			builder.WriteString("s")
		}
	}

	if e.Err != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Err.Error())
	}

	return builder.String()
}

// Unwrap returns the kind and the cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2) //nolint:mnd // kind and cause

	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}

	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

// IOFailure tags err as an I/O failure of origin. An error that already is an
// I/O failure is returned unchanged.
func IOFailure(origin Origin, err error) error {
	if isKind(err, ErrIO) {
		return err
	}

	return &Error{Kind: ErrIO, Origin: origin, Format: "", Attempts: 0, Err: err}
}

// SyntaxFailure tags err as a syntax failure of origin. An error that already
// is a syntax failure is returned unchanged.
func SyntaxFailure(origin Origin, err error) error {
	if isKind(err, ErrSyntax) {
		return err
	}

	return &Error{Kind: ErrSyntax, Origin: origin, Format: "", Attempts: 0, Err: err}
}

// NoProviderFailure reports that nothing is registered for what, e.g.
// `extension "xyz"`.
func NoProviderFailure(origin Origin, what string) error {
	return &Error{Kind: ErrNoProvider, Origin: origin, Format: "", Attempts: 0, Err: errors.New(what)} //nolint:err113 // lookup description
}

// AllProvidersFailed reports an exhausted fallback chain of attempts providers
// whose last failure was last.
func AllProvidersFailed(origin Origin, attempts int, last error) error {
	return &Error{Kind: ErrAllProvidersFailed, Origin: origin, Format: "", Attempts: attempts, Err: last}
}

// IsIOFailure reports whether err is an I/O failure.
func IsIOFailure(err error) bool {
	return errors.Is(err, ErrIO)
}

func isKind(err error, kind error) bool {
	var failure *Error

	return errors.As(err, &failure) && errors.Is(failure.Kind, kind)
}
