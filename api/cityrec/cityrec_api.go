package cityrec

import (
	"context"

	"github.com/mfiume/toronto-free-skates/models"
)

// CityRecAPI defines the interface for the city recreation open-data
// endpoints the finder depends on.
type CityRecAPI interface {
	GetRinks(ctx context.Context) (*models.RinkQueryResponse, error)
	GetSchedule(ctx context.Context, rinkID int) ([]models.Session, error)
}
