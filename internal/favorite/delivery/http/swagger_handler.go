package http

import (
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// RegisterSwaggerDocs serves Swagger UI and the registered OpenAPI document
// under /swagger/. The document itself is registered by importing the docs
// package.
func RegisterSwaggerDocs(router *mux.Router) {
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
}

// ListUsers godoc
// @Summary List users
// @Description List every user with the ids of its favorite characters and planets
// @Tags Users
// @Produce json
// @Success 200 {array} domain.UserView
// @Router /users [get]
func (h *FavoriteHandler) ListUsersDoc() {}

// GetUserFavorites godoc
// @Summary Get a user's favorites
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.FavoritesView
// @Failure 404 {object} object{msg=string}
// @Router /users/{id}/favorites [get]
func (h *FavoriteHandler) GetUserFavoritesDoc() {}

// ListPeople godoc
// @Summary List characters
// @Tags People
// @Produce json
// @Success 200 {array} domain.CharacterView
// @Router /people [get]
func (h *FavoriteHandler) ListPeopleDoc() {}

// GetPerson godoc
// @Summary Get character by ID
// @Tags People
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} domain.CharacterView
// @Failure 404 {object} object{msg=string}
// @Router /people/{id} [get]
func (h *FavoriteHandler) GetPersonDoc() {}

// ListPlanets godoc
// @Summary List planets
// @Tags Planets
// @Produce json
// @Success 200 {array} domain.PlanetView
// @Router /planets [get]
func (h *FavoriteHandler) ListPlanetsDoc() {}

// GetPlanet godoc
// @Summary Get planet by ID
// @Tags Planets
// @Produce json
// @Param id path int true "Planet ID"
// @Success 200 {object} domain.PlanetView
// @Failure 404 {object} object{msg=string}
// @Router /planets/{id} [get]
func (h *FavoriteHandler) GetPlanetDoc() {}

// ListPlanetFans godoc
// @Summary List users who favorited a planet
// @Tags Planets
// @Produce json
// @Param id path int true "Planet ID"
// @Success 200 {array} domain.UserView
// @Failure 404 {object} object{msg=string}
// @Router /planets/{id}/fans [get]
func (h *FavoriteHandler) ListPlanetFansDoc() {}

// ListPersonFans godoc
// @Summary List users who favorited a character
// @Tags People
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {array} domain.UserView
// @Failure 404 {object} object{msg=string}
// @Router /people/{id}/fans [get]
func (h *FavoriteHandler) ListPersonFansDoc() {}

// ListStarships godoc
// @Summary List starships
// @Tags Starships
// @Produce json
// @Success 200 {array} domain.StarshipView
// @Router /starships [get]
func (h *FavoriteHandler) ListStarshipsDoc() {}

// GetStarship godoc
// @Summary Get starship by ID
// @Tags Starships
// @Produce json
// @Param id path int true "Starship ID"
// @Success 200 {object} domain.StarshipView
// @Failure 404 {object} object{msg=string}
// @Router /starships/{id} [get]
func (h *FavoriteHandler) GetStarshipDoc() {}

// AddFavoritePlanet godoc
// @Summary Favorite a planet
// @Description Idempotent: favoriting twice answers 200 "already favorited"
// @Tags Favorites
// @Accept json
// @Produce json
// @Param id path int true "Planet ID"
// @Param request body object{user_id=int} true "User"
// @Success 201 {object} object{msg=string}
// @Success 200 {object} object{msg=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /favorite/planet/{id} [post]
func (h *FavoriteHandler) AddFavoritePlanetDoc() {}

// RemoveFavoritePlanet godoc
// @Summary Unfavorite a planet
// @Description Idempotent: removing an absent favorite answers 200 "not favorited"
// @Tags Favorites
// @Accept json
// @Produce json
// @Param id path int true "Planet ID"
// @Param request body object{user_id=int} true "User"
// @Success 201 {object} object{msg=string}
// @Success 200 {object} object{msg=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /favorite/planet/{id} [delete]
func (h *FavoriteHandler) RemoveFavoritePlanetDoc() {}

// AddFavoritePerson godoc
// @Summary Favorite a character
// @Tags Favorites
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param request body object{user_id=int} true "User"
// @Success 201 {object} object{msg=string}
// @Success 200 {object} object{msg=string}
// @Failure 404 {object} object{error=string}
// @Router /favorite/people/{id} [post]
func (h *FavoriteHandler) AddFavoritePersonDoc() {}

// RemoveFavoritePerson godoc
// @Summary Unfavorite a character
// @Tags Favorites
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param request body object{user_id=int} true "User"
// @Success 201 {object} object{msg=string}
// @Success 200 {object} object{msg=string}
// @Failure 404 {object} object{error=string}
// @Router /favorite/people/{id} [delete]
func (h *FavoriteHandler) RemoveFavoritePersonDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{msg=string}
// @Failure 503 {object} object{error=string}
// @Router /health [get]
func (h *FavoriteHandler) HealthCheckDoc() {}
