package lifecycle

import (
	"context"

	"github.com/gnames/gnkey/pkg/igdt"
)

// ParamStore keeps named numeric parameters such as ranking weights.
type ParamStore interface {
	// Get returns the value of a parameter. A missing parameter is created
	// with the default value, which is then returned.
	Get(ctx context.Context, name string, def float64) (float64, error)

	// Set creates or replaces a parameter.
	Set(ctx context.Context, name string, value float64) error

	// Weights reads all ranking weights, creating missing ones from
	// defaults.
	Weights(ctx context.Context, defaults igdt.Weights) (igdt.Weights, error)
}
