package query

import (
	"context"
	"fmt"

	"github.com/tair/holonet/internal/favorite/domain"
)

// ListUsersQuery represents the query to list all users
type ListUsersQuery struct{}

// ListUsersHandler handles list users query
type ListUsersHandler struct {
	repo domain.Repository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.Repository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query
func (h *ListUsersHandler) Handle(ctx context.Context, _ ListUsersQuery) ([]domain.UserView, error) {
	users, err := h.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return serializeUsers(ctx, h.repo, users)
}

// serializeUsers attaches favorite id lists with one lookup for all users
func serializeUsers(ctx context.Context, repo domain.Repository, users []domain.User) ([]domain.UserView, error) {
	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	favs, err := repo.FavoriteIDs(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	return domain.SerializeUsers(users, favs), nil
}
