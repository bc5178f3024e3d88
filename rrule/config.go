package rrule

import (
	"io"
	"log/slog"
)

// UnknownPartPolicy decides what happens to a rule part the decoder does not know
type UnknownPartPolicy int

const (
	// UnknownPartsWarn records a Warning and keeps decoding
	UnknownPartsWarn UnknownPartPolicy = iota
	// UnknownPartsReject fails the decode with ErrUnrecognizedProperty
	UnknownPartsReject
)

// Config holds configuration options for a Decoder
type Config struct {
	UnknownParts UnknownPartPolicy
	Logger       *slog.Logger // nil discards log output
}

// DefaultConfig tolerates unknown parts and reports them as warnings
var DefaultConfig = Config{
	UnknownParts: UnknownPartsWarn,
}

// StrictConfig rejects any part outside RFC 5545's recur grammar
var StrictConfig = Config{
	UnknownParts: UnknownPartsReject,
}

// Option represents a configuration option for the Decoder
type Option func(*Config)

// WithLogger sets the logger for the decoder
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithUnknownParts sets the unknown part policy
func WithUnknownParts(policy UnknownPartPolicy) Option {
	return func(c *Config) {
		c.UnknownParts = policy
	}
}

// NewDecoder creates a decoder from DefaultConfig with the given options applied
func NewDecoder(opts ...Option) *Decoder {
	config := DefaultConfig
	for _, opt := range opts {
		opt(&config)
	}
	return NewDecoderWithConfig(config)
}

// NewDecoderWithConfig creates a decoder with custom configuration
func NewDecoderWithConfig(config Config) *Decoder {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Decoder{
		unknownParts: config.UnknownParts,
		logger:       logger,
	}
}
