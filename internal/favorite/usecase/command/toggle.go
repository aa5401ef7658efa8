package command

import (
	"context"
	"fmt"

	"github.com/tair/holonet/internal/favorite/domain"
	"github.com/tair/holonet/pkg/logger"
)

// validate checks the command shape before touching the store
func validate(userID uint, target domain.TargetType, targetID uint) error {
	if userID == 0 {
		return fmt.Errorf("user_id is required: %w", domain.ErrInvalidInput)
	}
	if !target.Valid() {
		return fmt.Errorf("unknown favorite target %q: %w", target, domain.ErrInvalidInput)
	}
	if targetID == 0 {
		return fmt.Errorf("%s id is required: %w", target, domain.ErrInvalidInput)
	}
	return nil
}

// ensureExists fails with a not-found error unless both records exist
func ensureExists(ctx context.Context, repo domain.Repository, userID uint, target domain.TargetType, targetID uint) error {
	if _, err := repo.FindUserByID(ctx, userID); err != nil {
		return err
	}

	var err error
	switch target {
	case domain.TargetPlanet:
		_, err = repo.FindPlanetByID(ctx, targetID)
	case domain.TargetCharacter:
		_, err = repo.FindCharacterByID(ctx, targetID)
	}
	return err
}

// announce publishes a committed change. The mutation is already durable, so
// a publish failure is only logged.
func announce(ctx context.Context, publisher domain.EventPublisher, change domain.FavoriteChange) {
	if publisher == nil || !change.Status.Changed() {
		return
	}
	if err := publisher.PublishFavoriteChanged(ctx, change); err != nil {
		logger.Warn(ctx).
			Err(err).
			Uint("user_id", change.UserID).
			Str("target", string(change.Target)).
			Uint("target_id", change.TargetID).
			Msg("Failed to publish favorite change")
	}
}
