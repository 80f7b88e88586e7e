package cityrec

import (
	"context"
	"fmt"

	"github.com/mfiume/toronto-free-skates/config"
	"github.com/mfiume/toronto-free-skates/models"
	"github.com/mfiume/toronto-free-skates/util"
)

// CityRecApiClientMock serves canned fixture data so the app runs
// end-to-end without touching the city endpoints.
type CityRecApiClientMock struct {
}

// NewCityRecApiClientMock creates a new instance of CityRecApiClientMock
func NewCityRecApiClientMock() *CityRecApiClientMock {
	return &CityRecApiClientMock{}
}

// GetRinks returns the rink catalog fixture.
func (c *CityRecApiClientMock) GetRinks(ctx context.Context) (*models.RinkQueryResponse, error) {
	response, err := util.ReadRinkQueryResponseFromJSON(config.GetResourcePath(config.RINK_QUERY_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read rink query response from json")
		return nil, err
	}

	return response, nil
}

// GetSchedule returns the schedule fixture decoded through the same
// path as a live payload, regardless of rink id.
func (c *CityRecApiClientMock) GetSchedule(ctx context.Context, rinkID int) ([]models.Session, error) {
	raw, err := util.ReadSchedulePayload(config.GetResourcePath(config.SCHEDULE_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read schedule payload from json")
		return nil, err
	}

	return DecodeSchedule(raw), nil
}
