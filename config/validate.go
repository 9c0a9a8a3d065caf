// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/chainsort/chain"
	"github.com/katalvlaran/chainsort/distribution"
	"github.com/katalvlaran/chainsort/pairsort"
	"github.com/katalvlaran/chainsort/probability"
)

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("chainpath", func(fl validator.FieldLevel) bool {
		_, err := chain.ParsePath(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("sortalg", func(fl validator.FieldLevel) bool {
		_, err := pairsort.ParseAlgorithm(fl.Field().String())
		return err == nil
	})
	return v
})

// Validate checks struct tags, then the cross-field rules:
//   - bins must not exceed distribution.MaxBins;
//   - a non-zero smoothing window is odd and larger than the order;
//   - the model constants build a probability.Model.
//
// Every failure wraps ErrInvalidConfig; model failures also wrap
// probability.ErrConfiguration.
func (c *Config) Validate() error {
	if err := validate().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s: failed %q", ErrInvalidConfig, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	d := c.Distribution
	if d.Bins > distribution.MaxBins {
		return fmt.Errorf("%w: distribution.bins=%d exceeds %d", ErrInvalidConfig, d.Bins, distribution.MaxBins)
	}
	if d.Window > 0 {
		if d.Window%2 == 0 {
			return fmt.Errorf("%w: smooth_window=%d must be odd", ErrInvalidConfig, d.Window)
		}
		if d.Order >= d.Window {
			return fmt.Errorf("%w: smooth_order=%d must be below smooth_window=%d", ErrInvalidConfig, d.Order, d.Window)
		}
	}
	if _, err := probability.New(c.Model.ToConstants()); err != nil {
		return fmt.Errorf("%w: model: %w", ErrInvalidConfig, err)
	}

	return nil
}

// ChainPath returns the parsed Path. Call after Validate.
func (c *Config) ChainPath() chain.Path {
	p, _ := chain.ParsePath(c.Path)
	return p
}

// Algorithms returns the parsed sorter list (all when empty).
func (c *Config) Algorithms() ([]pairsort.Algorithm, error) {
	return pairsort.ParseAlgorithms(c.Benchmark.Algorithms)
}

// Symbol returns the distribution symbol.
func (c *Config) Symbol() probability.Symbol {
	switch c.Distribution.Symbol {
	case "B", "b":
		return probability.B
	case "C", "c":
		return probability.C
	default:
		return probability.A
	}
}

// NewModel builds the probability model from the model section.
func (c *Config) NewModel() (*probability.Model, error) {
	return probability.New(c.Model.ToConstants())
}
