package geocode

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mfiume/toronto-free-skates/api"
	"github.com/mfiume/toronto-free-skates/config"
	"github.com/mfiume/toronto-free-skates/models"
)

// GeocodeApiClient embeds the common HTTPClient
type GeocodeApiClient struct {
	*api.HTTPClient
}

// NewGeocodeApiClient creates a new instance of GeocodeApiClient
func NewGeocodeApiClient(httpClient *api.HTTPClient) *GeocodeApiClient {
	return &GeocodeApiClient{
		HTTPClient: httpClient,
	}
}

// Search resolves an address through the Nominatim-compatible search
// endpoint, best match first.
func (c *GeocodeApiClient) Search(ctx context.Context, query string) ([]models.GeocodeResult, error) {
	vals := url.Values{}
	vals.Set("format", "json")
	vals.Set("q", query)
	vals.Set("limit", "1")

	var results []models.GeocodeResult
	if err := c.Get(ctx, config.GEOCODE_SEARCH_PATH, vals, &results); err != nil {
		return nil, fmt.Errorf("geocode search failed: %w", err)
	}
	return results, nil
}
