package dao

import (
	"context"
	"log"
	"sync"

	"github.com/mfiume/toronto-free-skates/api/cityrec"
	"github.com/mfiume/toronto-free-skates/models"
)

// RinkCatalogDAO caches the city rink catalog for the process lifetime.
// Facility lists change far less often than schedules, so the catalog
// is fetched at most once; refreshing it means restarting the process.
type RinkCatalogDAO struct {
	api   cityrec.CityRecAPI
	once  sync.Once
	rinks []models.Rink
}

// NewRinkCatalogDAO initializes a RinkCatalogDAO with the city API client.
func NewRinkCatalogDAO(api cityrec.CityRecAPI) *RinkCatalogDAO {
	return &RinkCatalogDAO{api: api}
}

// GetRinks returns the cached catalog, fetching it on first use. A
// fetch failure degrades to an empty catalog rather than an error: the
// app presents it as "no rinks", never as a crash.
func (dao *RinkCatalogDAO) GetRinks(ctx context.Context) []models.Rink {
	dao.once.Do(func() {
		response, err := dao.api.GetRinks(ctx)
		if err != nil {
			log.Printf("[RinkCatalogDAO] catalog fetch failed: %v", err)
			return
		}

		rinks := make([]models.Rink, 0, len(response.Features))
		for _, feature := range response.Features {
			rinks = append(rinks, feature.Attributes.ToRink())
		}
		dao.rinks = rinks
		log.Printf("[RinkCatalogDAO] cached %d rinks", len(rinks))
	})

	return dao.rinks
}
