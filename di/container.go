package di

import (
	"log"
	"time"

	"github.com/gorilla/mux"

	"github.com/mfiume/toronto-free-skates/api"
	"github.com/mfiume/toronto-free-skates/api/cityrec"
	"github.com/mfiume/toronto-free-skates/api/geocode"
	"github.com/mfiume/toronto-free-skates/config"
	"github.com/mfiume/toronto-free-skates/dao"
	"github.com/mfiume/toronto-free-skates/db"
	"github.com/mfiume/toronto-free-skates/server"
	"github.com/mfiume/toronto-free-skates/server/handlers"
	services "github.com/mfiume/toronto-free-skates/service"
)

// Container holds all application dependencies.
type Container struct {
	CityRecAPI            cityrec.CityRecAPI
	GeocodeAPI            geocode.GeocodeAPI
	RinkCatalogDao        *dao.RinkCatalogDAO
	GeocodeCache          db.KVStore
	SessionAggregator     *services.SessionAggregatorService
	GeocodeService        *services.GeocodeService
	SessionHandler        *handlers.SessionHandler
	MuxRouter             *mux.Router
	Router                *server.Router
	SkateFinderHttpServer *server.SkateFinderHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string, addr string) *Container {
	log.Printf("initializing container - env: %s", env)

	// Initialize city and geocode API clients - fixture-backed mocks
	// outside prod
	var cityRecAPI cityrec.CityRecAPI
	var geocodeAPI geocode.GeocodeAPI
	if env != "prod" {
		log.Printf("Using mock city rec and geocode apis")
		cityRecAPI = cityrec.NewCityRecApiClientMock()
		geocodeAPI = geocode.NewGeocodeApiClientMock()
	} else {
		log.Printf("Using prod city rec and geocode apis")
		catalogClient := api.NewHTTPClient(config.RINK_CATALOG_ENDPOINT_BASE, config.CATALOG_FETCH_TIMEOUT_SECONDS*time.Second)
		scheduleClient := api.NewHTTPClient(config.SCHEDULE_ENDPOINT_BASE, config.SCHEDULE_FETCH_TIMEOUT_SECONDS*time.Second)
		geocodeClient := api.NewHTTPClient(config.GEOCODE_ENDPOINT_BASE, config.GEOCODE_FETCH_TIMEOUT_SECONDS*time.Second)

		cityRecAPI = cityrec.NewCityRecApiClient(catalogClient, scheduleClient)
		geocodeAPI = geocode.NewGeocodeApiClient(geocodeClient)
	}

	// Initialize the process-lifetime rink catalog cache
	rinkCatalogDao := dao.NewRinkCatalogDAO(cityRecAPI)

	// Initialize the geocode result cache
	geocodeCache := db.NewMemoryKVStore()

	// Initialize service layer
	sessionAggregator := services.NewSessionAggregatorService(rinkCatalogDao, cityRecAPI)
	geocodeService := services.NewGeocodeService(geocodeAPI, geocodeCache)

	// Initialize session handler
	sessionHandler := handlers.NewSessionHandler(sessionAggregator, geocodeService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(sessionHandler, muxRouter)

	// Initialize skate finder server
	skateFinderHttpServer := server.NewSkateFinderHttpServer(router, muxRouter, addr)

	return &Container{
		CityRecAPI:            cityRecAPI,
		GeocodeAPI:            geocodeAPI,
		RinkCatalogDao:        rinkCatalogDao,
		GeocodeCache:          geocodeCache,
		SessionAggregator:     sessionAggregator,
		GeocodeService:        geocodeService,
		SessionHandler:        sessionHandler,
		MuxRouter:             muxRouter,
		Router:                router,
		SkateFinderHttpServer: skateFinderHttpServer,
	}
}
