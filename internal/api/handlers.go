package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/mwhite7112/woodpantry-recipefetch/internal/clients"
	"github.com/mwhite7112/woodpantry-recipefetch/internal/listing"
)

func NewRouter(ctrl *listing.Controller, logger zerolog.Logger, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(hlog.NewHandler(logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/recipes", handleGetRecipes(ctrl))
	r.Post("/recipes/refresh", handleRefresh(ctrl))
	r.Get("/recipes/uuid/{uuid}", handleGetRecipeByUUID(ctrl))
	r.Get("/recipes/{index}", handleGetRecipeAt(ctrl))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

type viewStateResponse struct {
	Status  listing.Status   `json:"status"`
	Count   int              `json:"count"`
	Recipes []clients.Recipe `json:"recipes"`
	Error   string           `json:"error,omitempty"`
}

func newViewStateResponse(vs listing.ViewState) viewStateResponse {
	recipes := vs.Recipes
	if recipes == nil {
		recipes = []clients.Recipe{}
	}
	return viewStateResponse{
		Status:  vs.Status,
		Count:   len(recipes),
		Recipes: recipes,
		Error:   vs.Message(),
	}
}

// handleGetRecipes returns the current view state without fetching.
func handleGetRecipes(ctrl *listing.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jsonOK(w, newViewStateResponse(ctrl.ViewState()))
	}
}

// handleRefresh fetches the collection again. Failures keep the previous list
// and answer 502 with the user-facing message.
func handleRefresh(ctrl *listing.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.FetchRecipes(r.Context()); err != nil {
			jsonError(w, clients.UserMessage(err), http.StatusBadGateway)
			return
		}
		jsonOK(w, newViewStateResponse(ctrl.ViewState()))
	}
}

func handleGetRecipeAt(ctrl *listing.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			jsonError(w, "index must be an integer", http.StatusBadRequest)
			return
		}
		recipe, ok := ctrl.ItemAt(index)
		if !ok {
			jsonError(w, "no recipe at index "+strconv.Itoa(index), http.StatusNotFound)
			return
		}
		jsonOK(w, recipe)
	}
}

func handleGetRecipeByUUID(ctrl *listing.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "uuid"))
		if err != nil {
			jsonError(w, "uuid is not valid", http.StatusBadRequest)
			return
		}
		recipe, ok := ctrl.FindByUUID(id)
		if !ok {
			jsonError(w, "recipe not found", http.StatusNotFound)
			return
		}
		jsonOK(w, recipe)
	}
}

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}
