package command

import (
	"context"

	"github.com/tair/holonet/internal/favorite/domain"
)

// RemoveFavoriteCommand represents the command to unfavorite a planet or character
type RemoveFavoriteCommand struct {
	UserID   uint
	Target   domain.TargetType
	TargetID uint
}

// RemoveFavoriteHandler handles remove favorite command
type RemoveFavoriteHandler struct {
	repo      domain.Repository
	publisher domain.EventPublisher
}

// NewRemoveFavoriteHandler creates a new remove favorite handler
func NewRemoveFavoriteHandler(repo domain.Repository, publisher domain.EventPublisher) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{repo: repo, publisher: publisher}
}

// Handle executes the remove favorite command. Removing an absent pair is a
// successful no-op reported as StatusNotFavorited.
func (h *RemoveFavoriteHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) (domain.FavoriteStatus, error) {
	if err := validate(cmd.UserID, cmd.Target, cmd.TargetID); err != nil {
		return "", err
	}

	if err := ensureExists(ctx, h.repo, cmd.UserID, cmd.Target, cmd.TargetID); err != nil {
		return "", err
	}

	removed, err := h.repo.RemoveFavorite(ctx, cmd.Target, cmd.UserID, cmd.TargetID)
	if err != nil {
		return "", err
	}

	status := domain.StatusNotFavorited
	if removed {
		status = domain.StatusRemoved
	}

	announce(ctx, h.publisher, domain.FavoriteChange{
		UserID:   cmd.UserID,
		Target:   cmd.Target,
		TargetID: cmd.TargetID,
		Status:   status,
	})

	return status, nil
}
