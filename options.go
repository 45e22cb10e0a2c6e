package gcdn

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBufferSize is returned when bufferSize is not positive.
	ErrInvalidBufferSize = errors.New("bufferSize must be greater than 0")

	// ErrInvalidMaxRetainedSize is returned when maxRetainedSize is not positive.
	ErrInvalidMaxRetainedSize = errors.New("maxRetainedSize must be greater than 0")

	// ErrMaxRetainedTooSmall is returned when maxRetainedSize is smaller than bufferSize.
	ErrMaxRetainedTooSmall = errors.New("maxRetainedSize must be at least bufferSize")
)

const (
	// DefaultBufferSize is the default initial capacity, in operands, of a pooled scratch buffer.
	DefaultBufferSize = 64

	// DefaultMaxRetainedSize is the default capacity, in operands, above which
	// a scratch buffer is dropped instead of being returned to the pool.
	DefaultMaxRetainedSize = 64 * 1024
)

// Option is a function that configures a Pool.
type Option func(*config) error

// config holds the configuration for a Pool.
type config struct {
	bufferSize      int
	maxRetainedSize int
}

func defaultConfig() config {
	return config{
		bufferSize:      DefaultBufferSize,
		maxRetainedSize: DefaultMaxRetainedSize,
	}
}

// validate checks that the configuration is valid.
func (c *config) validate() error {
	if c.bufferSize <= 0 {
		return ErrInvalidBufferSize
	}

	if c.maxRetainedSize <= 0 {
		return ErrInvalidMaxRetainedSize
	}

	if c.maxRetainedSize < c.bufferSize {
		return fmt.Errorf("%w: maxRetainedSize (%d), bufferSize (%d)",
			ErrMaxRetainedTooSmall, c.maxRetainedSize, c.bufferSize)
	}

	return nil
}

// WithBufferSize sets the initial capacity of each scratch buffer.
func WithBufferSize(size int) Option {
	return func(c *config) error {
		if size <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidBufferSize, size)
		}

		c.bufferSize = size

		return nil
	}
}

// WithMaxRetainedSize sets the largest buffer capacity the pool keeps.
// Buffers that grew past it while serving a large call are left to the
// garbage collector.
func WithMaxRetainedSize(size int) Option {
	return func(c *config) error {
		if size <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidMaxRetainedSize, size)
		}

		c.maxRetainedSize = size

		return nil
	}
}
