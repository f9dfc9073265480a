package app

import (
	"errors"
	"io"

	"go.trai.ch/fingerprint/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	stores []io.Closer
}

// NewComponents creates a new Components struct from dependencies. The stores
// are flushed and released by Close.
func NewComponents(app *App, logger ports.Logger, stores ...io.Closer) *Components {
	return &Components{
		App:    app,
		Logger: logger,
		stores: stores,
	}
}

// Close flushes and releases every store.
func (c *Components) Close() error {
	var errs error
	for _, store := range c.stores {
		errs = errors.Join(errs, store.Close())
	}
	return errs
}
