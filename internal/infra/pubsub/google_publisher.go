package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"glpmap/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger

	// pending counts results not yet reported
	pending sync.WaitGroup
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Fail at startup rather than on the first delivered order
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishMapEvent hands the event to the Pub/Sub client and returns without waiting for the
// broker, so a tick is never slowed down by the round trip. Failures are logged once the result
// arrives; Close flushes pending messages.
func (p *googlePubSubPublisher) PublishMapEvent(ctx context.Context, event *service.MapEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
		// Events of one session keep their order
		OrderingKey: event.SessionID,
	})

	p.pending.Add(1)
	go func() {
		defer p.pending.Done()

		serverID, err := result.Get(context.WithoutCancel(ctx))
		if err != nil {
			// An ordering key stays paused after a failure until resumed
			p.publisher.ResumePublish(event.SessionID)
			p.logger.Warn("[GooglePubSub] Failed to publish map event",
				slog.String("type", event.Type),
				slog.String("session_id", event.SessionID),
				slog.Any("error", err),
			)

			return
		}

		p.logger.Debug("[GooglePubSub] Map event published",
			slog.String("type", event.Type),
			slog.String("session_id", event.SessionID),
			slog.String("server_id", serverID),
		)
	}()

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	p.pending.Wait()
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
