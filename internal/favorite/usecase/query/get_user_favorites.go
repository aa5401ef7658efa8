package query

import (
	"context"
	"fmt"

	"github.com/tair/holonet/internal/favorite/domain"
)

// GetUserFavoritesQuery represents the query to get a user's favorites
type GetUserFavoritesQuery struct {
	UserID uint
}

// GetUserFavoritesHandler handles get user favorites query
type GetUserFavoritesHandler struct {
	repo domain.Repository
}

// NewGetUserFavoritesHandler creates a new get user favorites handler
func NewGetUserFavoritesHandler(repo domain.Repository) *GetUserFavoritesHandler {
	return &GetUserFavoritesHandler{repo: repo}
}

// Handle executes the get user favorites query
func (h *GetUserFavoritesHandler) Handle(ctx context.Context, query GetUserFavoritesQuery) (*domain.FavoritesView, error) {
	if query.UserID == 0 {
		return nil, domain.ErrUserNotFound
	}

	if _, err := h.repo.FindUserByID(ctx, query.UserID); err != nil {
		return nil, err
	}

	characters, err := h.repo.FavoriteCharactersOf(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorite characters: %w", err)
	}

	planets, err := h.repo.FavoritePlanetsOf(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorite planets: %w", err)
	}

	return &domain.FavoritesView{
		FavoriteCharacters: domain.SerializeCharacters(characters),
		FavoritePlanets:    domain.SerializePlanets(planets),
	}, nil
}
