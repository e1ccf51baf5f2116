package main

import "github.com/pkg/errors"

var (
	ErrNotFound        = errors.New("input not found")
	ErrParse           = errors.New("malformed sample")
	ErrEmptyPopulation = errors.New("empty population")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConfig          = errors.New("invalid configuration")
	ErrDivisionByZero  = errors.New("division by zero")

	// ErrDegenerateRange is returned when the value range is narrower than
	// the requested number of intervals, which truncates the width to 0.
	ErrDegenerateRange = errors.WithMessage(ErrDivisionByZero, "degenerate range")
	// ErrTooFewSamples is returned for corrected variance over fewer than two values.
	ErrTooFewSamples = errors.WithMessage(ErrDivisionByZero, "too few samples")
)
