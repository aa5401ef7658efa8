package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/holonet/internal/favorite/domain"
)

func TestPublisher_PublishFavoriteChanged(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewProducerConfig())
	defer producer.Close()

	publisher := NewPublisherWithProducer(producer)
	fixed := time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC)
	publisher.now = func() time.Time { return fixed }

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != TopicFavoriteChanged {
			return errors.New("unexpected topic " + msg.Topic)
		}

		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "user_1" {
			return errors.New("unexpected key " + string(key))
		}

		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var event FavoriteChangedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			return err
		}
		if event.EventType != EventTypeFavoriteChanged || event.Action != "added" ||
			event.Target != "planet" || event.TargetID != 3 || !event.Timestamp.Equal(fixed) {
			return errors.New("unexpected event payload " + string(value))
		}

		for _, h := range msg.Headers {
			if string(h.Key) == "event_id" && string(h.Value) == event.EventID {
				return nil
			}
		}
		return errors.New("event_id header missing")
	})

	err := publisher.PublishFavoriteChanged(context.Background(), domain.FavoriteChange{
		UserID:   1,
		Target:   domain.TargetPlanet,
		TargetID: 3,
		Status:   domain.StatusAdded,
	})
	require.NoError(t, err)
}

func TestPublisher_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewProducerConfig())
	defer producer.Close()

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := NewPublisherWithProducer(producer).PublishFavoriteChanged(context.Background(), domain.FavoriteChange{
		UserID: 2, Target: domain.TargetCharacter, TargetID: 5, Status: domain.StatusRemoved,
	})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.PublishFavoriteChanged(context.Background(), domain.FavoriteChange{}))
}

func TestNewProducerConfig(t *testing.T) {
	config := NewProducerConfig()

	assert.True(t, config.Producer.Return.Successes)
	assert.Equal(t, sarama.WaitForAll, config.Producer.RequiredAcks)
	assert.NoError(t, config.Validate())
}
