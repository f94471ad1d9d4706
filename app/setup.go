package app

import (
	"fmt"
	"log"
	"os"

	"github.com/grigorishin/course-platform-api/api"
	"github.com/grigorishin/course-platform-api/config"
	"github.com/grigorishin/course-platform-api/database"
	"github.com/grigorishin/course-platform-api/router"
	"github.com/grigorishin/course-platform-api/services/cron"
)

// SetupAndRunServer wires config, storage, cron and routes, then serves.
func SetupAndRunServer() error {
	if err := config.LoadENV(); err != nil {
		return err
	}

	env, err := config.Get()
	if err != nil {
		return err
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Println("Check whether Postgres is running and the DB_* variables are set")
		return err
	}

	if err := store.Init(); err != nil {
		log.Println("Failed to run database migrations")
		return err
	}

	if err := store.Seed(); err != nil {
		log.Println("Failed to seed baseline data")
		return err
	}

	// Background cleanup jobs, on by default.
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" {
		cronManager = cron.NewCronManager(store.DB())
		if err := cronManager.Start(); err != nil {
			log.Printf("Warning: failed to start cron jobs: %v", err)
			cronManager = nil
		}
	}

	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	server := api.NewAPIServer(fmt.Sprintf(":%d", env.PORT))
	router.SetupRoutes(server.GetEngine(), store)

	return server.Run()
}
