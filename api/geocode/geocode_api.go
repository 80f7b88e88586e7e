package geocode

import (
	"context"

	"github.com/mfiume/toronto-free-skates/models"
)

// GeocodeAPI defines the interface for resolving free-text addresses
// to coordinates.
type GeocodeAPI interface {
	Search(ctx context.Context, query string) ([]models.GeocodeResult, error)
}
