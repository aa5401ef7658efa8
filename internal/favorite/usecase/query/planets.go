package query

import (
	"context"

	"github.com/tair/holonet/internal/favorite/domain"
)

// ListPlanetsQuery represents the query to list all planets
type ListPlanetsQuery struct{}

// ListPlanetsHandler handles list planets query
type ListPlanetsHandler struct {
	repo domain.Repository
}

// NewListPlanetsHandler creates a new list planets handler
func NewListPlanetsHandler(repo domain.Repository) *ListPlanetsHandler {
	return &ListPlanetsHandler{repo: repo}
}

// Handle executes the list planets query
func (h *ListPlanetsHandler) Handle(ctx context.Context, _ ListPlanetsQuery) ([]domain.PlanetView, error) {
	planets, err := h.repo.ListPlanets(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SerializePlanets(planets), nil
}

// GetPlanetQuery represents the query to get a planet by ID
type GetPlanetQuery struct {
	ID uint
}

// GetPlanetHandler handles get planet query
type GetPlanetHandler struct {
	repo domain.Repository
}

// NewGetPlanetHandler creates a new get planet handler
func NewGetPlanetHandler(repo domain.Repository) *GetPlanetHandler {
	return &GetPlanetHandler{repo: repo}
}

// Handle executes the get planet query
func (h *GetPlanetHandler) Handle(ctx context.Context, query GetPlanetQuery) (*domain.PlanetView, error) {
	if query.ID == 0 {
		return nil, domain.ErrPlanetNotFound
	}

	planet, err := h.repo.FindPlanetByID(ctx, query.ID)
	if err != nil {
		return nil, err
	}

	view := domain.SerializePlanet(*planet)
	return &view, nil
}
