// Package activity keeps running popularity tallies of favorite targets,
// fed by favorite-changed events.
package activity

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/holonet/internal/favorite/domain"
	"github.com/tair/holonet/kafka"
)

const (
	// KeyPrefix prefixes the sorted set of each target type
	KeyPrefix = "holonet:popularity:"

	// SeenPrefix marks event ids that were already applied
	SeenPrefix = KeyPrefix + "seen:"

	// SeenTTL bounds how long a redelivered event is recognized
	SeenTTL = 24 * time.Hour
)

// recordOnce applies the score change only if the event id is new.
// KEYS[1] seen marker, KEYS[2] sorted set; ARGV delta, member, ttl seconds.
var recordOnce = redis.NewScript(`
if redis.call("SET", KEYS[1], "1", "NX", "EX", ARGV[3]) then
	redis.call("ZINCRBY", KEYS[2], ARGV[1], ARGV[2])
	return 1
end
return 0
`)

// Entry is one ranked target
type Entry struct {
	TargetID uint
	Fans     int64
}

// Tally stores one sorted set per target type, scored by net fan count
type Tally struct {
	client *redis.Client
}

func NewTally(client *redis.Client) *Tally {
	return &Tally{client: client}
}

// Record applies one event at most once per event id. Statuses that did not
// change membership are ignored.
func (t *Tally) Record(ctx context.Context, event kafka.FavoriteChangedEvent) error {
	target := domain.TargetType(event.Target)
	if !target.Valid() {
		return fmt.Errorf("unknown favorite target %q: %w", event.Target, domain.ErrInvalidInput)
	}

	var delta float64
	switch domain.FavoriteStatus(event.Action) {
	case domain.StatusAdded:
		delta = 1
	case domain.StatusRemoved:
		delta = -1
	default:
		return nil
	}

	if event.EventID == "" {
		return fmt.Errorf("event without id: %w", domain.ErrInvalidInput)
	}

	member := strconv.FormatUint(uint64(event.TargetID), 10)
	keys := []string{SeenPrefix + event.EventID, KeyPrefix + string(target)}
	if err := recordOnce.Run(ctx, t.client, keys, delta, member, int64(SeenTTL/time.Second)).Err(); err != nil {
		return fmt.Errorf("failed to record %s %s: %w", event.Action, event.Target, err)
	}
	return nil
}

// Top returns up to n targets with the most fans, highest first
func (t *Tally) Top(ctx context.Context, target domain.TargetType, n int) ([]Entry, error) {
	if n <= 0 {
		return []Entry{}, nil
	}

	scores, err := t.client.ZRevRangeWithScores(ctx, KeyPrefix+string(target), 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s popularity: %w", target, err)
	}

	entries := make([]Entry, 0, len(scores))
	for _, z := range scores {
		id, err := strconv.ParseUint(fmt.Sprint(z.Member), 10, 64)
		if err != nil {
			continue
		}
		if z.Score <= 0 {
			continue
		}
		entries = append(entries, Entry{TargetID: uint(id), Fans: int64(z.Score)})
	}
	return entries, nil
}
