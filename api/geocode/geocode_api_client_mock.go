package geocode

import (
	"context"
	"fmt"

	"github.com/mfiume/toronto-free-skates/config"
	"github.com/mfiume/toronto-free-skates/models"
	"github.com/mfiume/toronto-free-skates/util"
)

// GeocodeApiClientMock serves a canned geocode fixture for dev runs.
type GeocodeApiClientMock struct {
}

// NewGeocodeApiClientMock creates a new instance of GeocodeApiClientMock
func NewGeocodeApiClientMock() *GeocodeApiClientMock {
	return &GeocodeApiClientMock{}
}

// Search returns the geocode fixture regardless of the query.
func (c *GeocodeApiClientMock) Search(ctx context.Context, query string) ([]models.GeocodeResult, error) {
	results, err := util.ReadGeocodeResultsFromJSON(config.GetResourcePath(config.GEOCODE_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read geocode response from json")
		return nil, err
	}

	return results, nil
}
