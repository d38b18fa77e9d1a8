package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (a *app) buildRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	// UI/static
	r.HandleFunc("/", a.uiHandler)
	r.HandleFunc("/wardrobe", a.uiHandler)
	r.HandleFunc("/outfits", a.uiHandler)
	r.HandleFunc("/planner", a.uiHandler)
	r.HandleFunc("/laundry", a.uiHandler)
	r.HandleFunc("/ui/shared.js", a.uiHandler)
	r.HandleFunc("/ui/confirm.js", a.uiHandler)
	r.HandleFunc("/ui/animations.js", a.uiHandler)

	// Health/info
	r.Get("/healthz", healthzHandler)
	r.Get("/api/v1/server-info", serverInfoHandler)

	// Item + category APIs
	r.Get("/api/v1/items", a.listItemsHandler)
	r.Post("/api/v1/items", a.createItemHandler)
	r.Get("/api/v1/items/{id}", a.getItemHandler)
	r.Patch("/api/v1/items/{id}", a.updateItemHandler)
	r.Delete("/api/v1/items/{id}", a.deleteItemHandler)
	r.Post("/api/v1/items/{id}/favorite", a.toggleItemFavoriteHandler)
	r.Post("/api/v1/items/{id}/wear", a.recordItemWearHandler)
	r.Post("/api/v1/items/{id}/wash", a.markItemWashedHandler)
	r.Post("/api/v1/items/{id}/status", a.setItemStatusHandler)
	r.Get("/api/v1/categories", a.listCategoriesHandler)
	r.Post("/api/v1/categories", a.createCategoryHandler)
	r.Delete("/api/v1/categories/{id}", a.deleteCategoryHandler)

	// Outfit APIs
	r.Get("/api/v1/outfits", a.listOutfitsHandler)
	r.Post("/api/v1/outfits", a.createOutfitHandler)
	r.Get("/api/v1/outfits/{id}", a.getOutfitHandler)
	r.Patch("/api/v1/outfits/{id}", a.updateOutfitHandler)
	r.Delete("/api/v1/outfits/{id}", a.deleteOutfitHandler)
	r.Post("/api/v1/outfits/{id}/favorite", a.toggleOutfitFavoriteHandler)
	r.Post("/api/v1/outfits/{id}/wear", a.recordOutfitWearHandler)
	r.Get("/api/v1/outfits/{id}/laundry-check", a.outfitLaundryCheckHandler)

	// Planner APIs
	r.Get("/api/v1/events", a.listEventsHandler)
	r.Post("/api/v1/events", a.createEventHandler)
	r.Get("/api/v1/events/{id}", a.getEventHandler)
	r.Patch("/api/v1/events/{id}", a.updateEventHandler)
	r.Delete("/api/v1/events/{id}", a.deleteEventHandler)
	r.Post("/api/v1/events/{id}/complete", a.toggleEventCompleteHandler)
	r.Get("/api/v1/plannings", a.listPlanningsHandler)
	r.Post("/api/v1/plannings", a.createPlanningHandler)
	r.Delete("/api/v1/plannings/{id}", a.deletePlanningHandler)

	// Stats + laundry
	r.Get("/api/v1/stats", a.statsHandler)
	r.Get("/api/v1/laundry", a.laundryOverviewHandler)

	// Closet export/import
	r.Get("/api/v1/closet/export", a.closetExportHandler)
	r.Post("/api/v1/closet/import", a.closetImportHandler)

	// Form endpoints used by the UI pages; they answer with redirects so the
	// browser lands back on the page it came from.
	r.Post("/forms/items/{id}/delete", a.deleteItemFormHandler)
	r.Post("/forms/items/{id}/favorite", a.toggleItemFavoriteFormHandler)
	r.Post("/forms/items/{id}/wear", a.recordItemWearFormHandler)
	r.Post("/forms/items/{id}/wash", a.markItemWashedFormHandler)
	r.Post("/forms/outfits/{id}/delete", a.deleteOutfitFormHandler)
	r.Post("/forms/events/{id}/delete", a.deleteEventFormHandler)

	// Photos
	r.Get("/media/*", a.mediaFileHandler)

	return r
}
