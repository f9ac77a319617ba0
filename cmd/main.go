package main

import (
	"log"
	"os"

	"backend/config"
	"backend/controllers"
	"backend/routes"
	"backend/services"
	"backend/storage"
	"backend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	publicDir := os.Getenv("PUBLIC_DATA_DIR")
	if publicDir == "" {
		publicDir = "./public/data"
	}
	store, err := storage.NewStore(dataDir, publicDir)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}

	archive := services.NewArchiveService(store)
	stats := services.NewStatsService(store)
	trainer := services.NewTrainerService(store)

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push disabled: %v", err)
		push = nil
	}

	controllers.Init(controllers.Deps{
		Store:    store,
		Servings: services.NewServingService(store),
		Archive:  archive,
		Stats:    stats,
		Trainer:  trainer,
		Food:     services.NewFoodService(store),
		Events:   services.NewEventService(store),
		Cart:     services.NewCartService(store),
		Chat:     services.NewChatService(),
		Push:     push,
		Hub:      services.NewRealtimeHub(),
	})

	sched := services.NewScheduler(archive, stats, trainer)
	if err := sched.Start(); err != nil {
		log.Fatalf("scheduler start failed: %v", err)
	}
	defer sched.Stop()

	r := routes.SetupRouter()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
