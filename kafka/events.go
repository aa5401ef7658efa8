package kafka

import "time"

// FavoriteChangedEvent is published after a favorite is added or removed
type FavoriteChangedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	UserID    uint      `json:"user_id"`
	Target    string    `json:"target"`
	TargetID  uint      `json:"target_id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeFavoriteChanged = "favorite.changed"
)

// Kafka topics
const (
	TopicFavoriteChanged = "favorite-changed"
)
