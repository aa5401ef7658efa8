package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/tair/holonet/internal/favorite/domain"
	"github.com/tair/holonet/internal/favorite/usecase/command"
	"github.com/tair/holonet/internal/favorite/usecase/query"
	"github.com/tair/holonet/pkg/logger"
)

// Commands groups the command handlers used by FavoriteHandler
type Commands struct {
	AddFavorite    *command.AddFavoriteHandler
	RemoveFavorite *command.RemoveFavoriteHandler
}

// Queries groups the query handlers used by FavoriteHandler
type Queries struct {
	ListUsers        *query.ListUsersHandler
	GetUserFavorites *query.GetUserFavoritesHandler
	ListPlanets      *query.ListPlanetsHandler
	GetPlanet        *query.GetPlanetHandler
	ListCharacters   *query.ListCharactersHandler
	GetCharacter     *query.GetCharacterHandler
	ListStarships    *query.ListStarshipsHandler
	GetStarship      *query.GetStarshipHandler
	ListFans         *query.ListFansHandler
}

// FavoriteHandler handles HTTP requests for the catalog and favorites
type FavoriteHandler struct {
	commands Commands
	queries  Queries
	metrics  *Metrics
	router   *mux.Router
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(commands Commands, queries Queries, metrics *Metrics) *FavoriteHandler {
	return &FavoriteHandler{
		commands: commands,
		queries:  queries,
		metrics:  metrics,
	}
}

// favoriteRequest is the body of the favorite toggle endpoints
type favoriteRequest struct {
	UserID uint `json:"user_id"`
}

// RegisterRoutes registers all routes. Numeric path ids are enforced by the
// route patterns, so non-numeric ids never reach a handler.
func (h *FavoriteHandler) RegisterRoutes(router *mux.Router) {
	h.router = router

	route := func(path, method string, fn http.HandlerFunc) {
		router.HandleFunc(path, h.metrics.Instrument(path, fn)).Methods(method)
	}

	route("/", http.MethodGet, h.Sitemap)
	route("/user", http.MethodGet, h.Hello)

	route("/users", http.MethodGet, h.ListUsers)
	route("/users/{id:[0-9]+}/favorites", http.MethodGet, h.GetUserFavorites)

	route("/people", http.MethodGet, h.ListPeople)
	route("/people/{id:[0-9]+}", http.MethodGet, h.GetPerson)
	route("/people/{id:[0-9]+}/fans", http.MethodGet, h.fans(domain.TargetCharacter))

	route("/planets", http.MethodGet, h.ListPlanets)
	route("/planets/{id:[0-9]+}", http.MethodGet, h.GetPlanet)
	route("/planets/{id:[0-9]+}/fans", http.MethodGet, h.fans(domain.TargetPlanet))

	route("/starships", http.MethodGet, h.ListStarships)
	route("/starships/{id:[0-9]+}", http.MethodGet, h.GetStarship)

	route("/favorite/people/{id:[0-9]+}", http.MethodPost, h.addFavorite(domain.TargetCharacter))
	route("/favorite/people/{id:[0-9]+}", http.MethodDelete, h.removeFavorite(domain.TargetCharacter))
	route("/favorite/planet/{id:[0-9]+}", http.MethodPost, h.addFavorite(domain.TargetPlanet))
	route("/favorite/planet/{id:[0-9]+}", http.MethodDelete, h.removeFavorite(domain.TargetPlanet))
}

// RegisterHealthCheck registers health check endpoint
func (h *FavoriteHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Warn(r.Context()).Err(err).Msg("Health check failed")
			respondError(w, http.StatusServiceUnavailable, "error", "Database unavailable")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"msg": "ok"})
	}).Methods(http.MethodGet)
}

// Sitemap handles GET /
func (h *FavoriteHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	endpoints := map[string][]string{}
	if h.router != nil {
		_ = h.router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
			tpl, err := route.GetPathTemplate()
			if err != nil {
				return nil
			}
			methods, _ := route.GetMethods()
			endpoints[tpl] = append(endpoints[tpl], methods...)
			return nil
		})
	}

	paths := make([]string, 0, len(endpoints))
	for p := range endpoints {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	type endpoint struct {
		Path    string   `json:"path"`
		Methods []string `json:"methods"`
	}
	out := make([]endpoint, 0, len(paths))
	for _, p := range paths {
		out = append(out, endpoint{Path: p, Methods: endpoints[p]})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"endpoints": out})
}

// Hello handles GET /user
func (h *FavoriteHandler) Hello(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"msg": "Hello, this is your GET /user response ",
	})
}

// ListUsers handles GET /users
func (h *FavoriteHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.queries.ListUsers.Handle(r.Context(), query.ListUsersQuery{})
	if err != nil {
		h.lookupError(w, r, err, "Failed to list users")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// GetUserFavorites handles GET /users/{id}/favorites
func (h *FavoriteHandler) GetUserFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.queries.GetUserFavorites.Handle(r.Context(), query.GetUserFavoritesQuery{UserID: pathID(r)})
	if err != nil {
		h.lookupError(w, r, err, "User not found")
		return
	}
	respondJSON(w, http.StatusOK, favorites)
}

// ListPeople handles GET /people
func (h *FavoriteHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.queries.ListCharacters.Handle(r.Context(), query.ListCharactersQuery{})
	if err != nil {
		h.lookupError(w, r, err, "Failed to list characters")
		return
	}
	respondJSON(w, http.StatusOK, people)
}

// GetPerson handles GET /people/{id}
func (h *FavoriteHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	person, err := h.queries.GetCharacter.Handle(r.Context(), query.GetCharacterQuery{ID: pathID(r)})
	if err != nil {
		h.lookupError(w, r, err, "Character not found")
		return
	}
	respondJSON(w, http.StatusOK, person)
}

// ListPlanets handles GET /planets
func (h *FavoriteHandler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := h.queries.ListPlanets.Handle(r.Context(), query.ListPlanetsQuery{})
	if err != nil {
		h.lookupError(w, r, err, "Failed to list planets")
		return
	}
	respondJSON(w, http.StatusOK, planets)
}

// GetPlanet handles GET /planets/{id}
func (h *FavoriteHandler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	planet, err := h.queries.GetPlanet.Handle(r.Context(), query.GetPlanetQuery{ID: pathID(r)})
	if err != nil {
		h.lookupError(w, r, err, "Planet not found")
		return
	}
	respondJSON(w, http.StatusOK, planet)
}

// ListStarships handles GET /starships
func (h *FavoriteHandler) ListStarships(w http.ResponseWriter, r *http.Request) {
	starships, err := h.queries.ListStarships.Handle(r.Context(), query.ListStarshipsQuery{})
	if err != nil {
		h.lookupError(w, r, err, "Failed to list starships")
		return
	}
	respondJSON(w, http.StatusOK, starships)
}

// GetStarship handles GET /starships/{id}
func (h *FavoriteHandler) GetStarship(w http.ResponseWriter, r *http.Request) {
	starship, err := h.queries.GetStarship.Handle(r.Context(), query.GetStarshipQuery{ID: pathID(r)})
	if err != nil {
		h.lookupError(w, r, err, "Starship not found")
		return
	}
	respondJSON(w, http.StatusOK, starship)
}

// fans handles GET /planets/{id}/fans and GET /people/{id}/fans
func (h *FavoriteHandler) fans(target domain.TargetType) http.HandlerFunc {
	notFound := "Planet not found"
	if target == domain.TargetCharacter {
		notFound = "Character not found"
	}

	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.queries.ListFans.Handle(r.Context(), query.ListFansQuery{Target: target, TargetID: pathID(r)})
		if err != nil {
			h.lookupError(w, r, err, notFound)
			return
		}
		respondJSON(w, http.StatusOK, users)
	}
}

// addFavorite handles POST /favorite/{people|planet}/{id}
func (h *FavoriteHandler) addFavorite(target domain.TargetType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeFavoriteRequest(w, r)
		if !ok {
			return
		}

		targetID := pathID(r)
		if targetID == 0 {
			h.respondToggle(w, r, target, "", domain.TargetNotFound(target))
			return
		}

		status, err := h.commands.AddFavorite.Handle(r.Context(), command.AddFavoriteCommand{
			UserID:   req.UserID,
			Target:   target,
			TargetID: targetID,
		})
		h.respondToggle(w, r, target, status, err)
	}
}

// removeFavorite handles DELETE /favorite/{people|planet}/{id}
func (h *FavoriteHandler) removeFavorite(target domain.TargetType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeFavoriteRequest(w, r)
		if !ok {
			return
		}

		targetID := pathID(r)
		if targetID == 0 {
			h.respondToggle(w, r, target, "", domain.TargetNotFound(target))
			return
		}

		status, err := h.commands.RemoveFavorite.Handle(r.Context(), command.RemoveFavoriteCommand{
			UserID:   req.UserID,
			Target:   target,
			TargetID: targetID,
		})
		h.respondToggle(w, r, target, status, err)
	}
}

// respondToggle answers 201 when the join table changed and 200 for no-ops
func (h *FavoriteHandler) respondToggle(w http.ResponseWriter, r *http.Request, target domain.TargetType, status domain.FavoriteStatus, err error) {
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondError(w, http.StatusNotFound, "error", "User or "+string(target)+" not found")
		case errors.Is(err, domain.ErrInvalidInput):
			respondError(w, http.StatusBadRequest, "error", err.Error())
		default:
			logger.Error(r.Context()).Err(err).Str("target", string(target)).Msg("Failed to toggle favorite")
			respondError(w, http.StatusInternalServerError, "error", "Internal server error")
		}
		return
	}

	h.metrics.ObserveToggle(target, status)

	code := http.StatusOK
	if status.Changed() {
		code = http.StatusCreated
	}
	respondJSON(w, code, map[string]string{"msg": string(status)})
}

// lookupError maps read failures: not-found is 404 with msg, the rest is 500
func (h *FavoriteHandler) lookupError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	if errors.Is(err, domain.ErrNotFound) {
		respondError(w, http.StatusNotFound, "msg", notFound)
		return
	}
	logger.Error(r.Context()).Err(err).Str("path", r.URL.Path).Msg(notFound)
	respondError(w, http.StatusInternalServerError, "error", "Internal server error")
}

func decodeFavoriteRequest(w http.ResponseWriter, r *http.Request) (favoriteRequest, bool) {
	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "error", "Invalid request body")
		return req, false
	}
	if req.UserID == 0 {
		respondError(w, http.StatusBadRequest, "error", "user_id is required")
		return req, false
	}
	return req, true
}

// pathID reads the {id} route variable. Overflowing values map to 0, which
// every query and command treats as absent.
func pathID(r *http.Request) uint {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError sends a single-field JSON error body
func respondError(w http.ResponseWriter, status int, key, message string) {
	respondJSON(w, status, map[string]string{key: message})
}
