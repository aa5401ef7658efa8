package command

import (
	"context"

	"github.com/tair/holonet/internal/favorite/domain"
)

// AddFavoriteCommand represents the command to favorite a planet or character
type AddFavoriteCommand struct {
	UserID   uint
	Target   domain.TargetType
	TargetID uint
}

// AddFavoriteHandler handles add favorite command
type AddFavoriteHandler struct {
	repo      domain.Repository
	publisher domain.EventPublisher
}

// NewAddFavoriteHandler creates a new add favorite handler
func NewAddFavoriteHandler(repo domain.Repository, publisher domain.EventPublisher) *AddFavoriteHandler {
	return &AddFavoriteHandler{repo: repo, publisher: publisher}
}

// Handle executes the add favorite command. Adding an existing pair is a
// successful no-op reported as StatusAlreadyFavorited.
func (h *AddFavoriteHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) (domain.FavoriteStatus, error) {
	if err := validate(cmd.UserID, cmd.Target, cmd.TargetID); err != nil {
		return "", err
	}

	if err := ensureExists(ctx, h.repo, cmd.UserID, cmd.Target, cmd.TargetID); err != nil {
		return "", err
	}

	inserted, err := h.repo.AddFavorite(ctx, cmd.Target, cmd.UserID, cmd.TargetID)
	if err != nil {
		return "", err
	}

	status := domain.StatusAlreadyFavorited
	if inserted {
		status = domain.StatusAdded
	}

	announce(ctx, h.publisher, domain.FavoriteChange{
		UserID:   cmd.UserID,
		Target:   cmd.Target,
		TargetID: cmd.TargetID,
		Status:   status,
	})

	return status, nil
}
