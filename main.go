package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mfiume/toronto-free-skates/di"
	"github.com/mfiume/toronto-free-skates/models"
	"github.com/mfiume/toronto-free-skates/util"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[MAIN] no .env file found, using process environment")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	container := di.NewContainer(env, addr)

	if env != "prod" {
		demoAggregation(container)
	}

	container.SkateFinderHttpServer.Start()
}

// demoAggregation runs one aggregation against the configured clients
// and plots the rinks, mirroring how a hosted view would call the core.
func demoAggregation(container *di.Container) {
	params := models.DefaultFilterParams()
	params.AnyDistance = true
	params.TimeFilter = models.TimeFilterAll

	// Toronto city hall
	ref := &models.Location{Lat: 43.6532, Lng: -79.3832}

	set := container.SessionAggregator.FetchAllSessions(context.Background(), ref, params)
	util.PrintSessionSetPartially(set)

	if err := util.PlotRinkMap(set, "rink_map.html"); err != nil {
		log.Printf("[MAIN] failed to plot rink map: %v", err)
	} else {
		log.Println("[MAIN] rink map generated: rink_map.html")
	}
}
