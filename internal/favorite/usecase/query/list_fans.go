package query

import (
	"context"
	"fmt"

	"github.com/tair/holonet/internal/favorite/domain"
)

// ListFansQuery represents the query to list the users who favorited a target
type ListFansQuery struct {
	Target   domain.TargetType
	TargetID uint
}

// ListFansHandler handles list fans query
type ListFansHandler struct {
	repo domain.Repository
}

// NewListFansHandler creates a new list fans handler
func NewListFansHandler(repo domain.Repository) *ListFansHandler {
	return &ListFansHandler{repo: repo}
}

// Handle executes the list fans query
func (h *ListFansHandler) Handle(ctx context.Context, query ListFansQuery) ([]domain.UserView, error) {
	if query.TargetID == 0 {
		return nil, domain.TargetNotFound(query.Target)
	}

	var (
		users []domain.User
		err   error
	)
	switch query.Target {
	case domain.TargetPlanet:
		if _, err = h.repo.FindPlanetByID(ctx, query.TargetID); err != nil {
			return nil, err
		}
		users, err = h.repo.PlanetFans(ctx, query.TargetID)
	case domain.TargetCharacter:
		if _, err = h.repo.FindCharacterByID(ctx, query.TargetID); err != nil {
			return nil, err
		}
		users, err = h.repo.CharacterFans(ctx, query.TargetID)
	default:
		return nil, fmt.Errorf("unknown favorite target %q: %w", query.Target, domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}

	return serializeUsers(ctx, h.repo, users)
}
