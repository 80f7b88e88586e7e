package cityrec

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mfiume/toronto-free-skates/api"
	"github.com/mfiume/toronto-free-skates/config"
	"github.com/mfiume/toronto-free-skates/models"
)

// CityRecApiClient talks to the two city endpoints: the ArcGIS facility
// catalog and the per-rink schedule files.
type CityRecApiClient struct {
	Catalog   *api.HTTPClient
	Schedules *api.HTTPClient
}

// NewCityRecApiClient creates a new instance of CityRecApiClient
func NewCityRecApiClient(catalog, schedules *api.HTTPClient) *CityRecApiClient {
	return &CityRecApiClient{
		Catalog:   catalog,
		Schedules: schedules,
	}
}

// GetRinks queries the facility catalog for every rink row. Geometry is
// excluded; the x/y attributes carry the coordinates.
func (c *CityRecApiClient) GetRinks(ctx context.Context) (*models.RinkQueryResponse, error) {
	query := url.Values{}
	query.Set("where", "1=1")
	query.Set("outFields", "locationid,location,address,location_type,x,y")
	query.Set("f", "json")
	query.Set("returnGeometry", "false")

	var response models.RinkQueryResponse
	if err := c.Catalog.Get(ctx, config.RINK_CATALOG_QUERY_PATH, query, &response); err != nil {
		return nil, fmt.Errorf("rink catalog query failed: %w", err)
	}
	return &response, nil
}

// GetSchedule fetches one rink's raw schedule payload and decodes it
// into leisure-skate sessions.
func (c *CityRecApiClient) GetSchedule(ctx context.Context, rinkID int) ([]models.Session, error) {
	endpoint := fmt.Sprintf(config.SCHEDULE_PATH_FORMAT, rinkID)

	raw, err := c.Schedules.GetRaw(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("schedule fetch failed for rink %d: %w", rinkID, err)
	}
	return DecodeSchedule(raw), nil
}
