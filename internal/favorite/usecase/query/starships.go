package query

import (
	"context"
	"fmt"

	"github.com/tair/holonet/internal/favorite/domain"
)

// ListStarshipsQuery represents the query to list all starships
type ListStarshipsQuery struct{}

// ListStarshipsHandler handles list starships query
type ListStarshipsHandler struct {
	repo domain.Repository
}

// NewListStarshipsHandler creates a new list starships handler
func NewListStarshipsHandler(repo domain.Repository) *ListStarshipsHandler {
	return &ListStarshipsHandler{repo: repo}
}

// Handle executes the list starships query
func (h *ListStarshipsHandler) Handle(ctx context.Context, _ ListStarshipsQuery) ([]domain.StarshipView, error) {
	starships, err := h.repo.ListStarships(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(starships))
	for _, s := range starships {
		ids = append(ids, s.ID)
	}

	crews, err := h.repo.CrewIDs(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("failed to load crews: %w", err)
	}
	return domain.SerializeStarships(starships, crews), nil
}

// GetStarshipQuery represents the query to get a starship by ID
type GetStarshipQuery struct {
	ID uint
}

// GetStarshipHandler handles get starship query
type GetStarshipHandler struct {
	repo domain.Repository
}

// NewGetStarshipHandler creates a new get starship handler
func NewGetStarshipHandler(repo domain.Repository) *GetStarshipHandler {
	return &GetStarshipHandler{repo: repo}
}

// Handle executes the get starship query
func (h *GetStarshipHandler) Handle(ctx context.Context, query GetStarshipQuery) (*domain.StarshipView, error) {
	if query.ID == 0 {
		return nil, domain.ErrStarshipNotFound
	}

	starship, err := h.repo.FindStarshipByID(ctx, query.ID)
	if err != nil {
		return nil, err
	}

	crews, err := h.repo.CrewIDs(ctx, starship.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load crew: %w", err)
	}

	view := domain.SerializeStarship(*starship, crews[starship.ID])
	return &view, nil
}
