package controllers

import (
	"backend/services"
	"backend/storage"
)

// Deps carries the shared service instances into the handler package.
// Wired once from main, like the global config.DB.
type Deps struct {
	Store    *storage.Store
	Servings *services.ServingService
	Archive  *services.ArchiveService
	Stats    *services.StatsService
	Trainer  *services.TrainerService
	Food     *services.FoodService
	Events   *services.EventService
	Cart     *services.CartService
	Chat     *services.ChatService
	Push     *services.PushService
	Hub      *services.RealtimeHub
}

var d Deps

func Init(deps Deps) { d = deps }
