package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/piresc/taximeter/internal/pkg/constants"
	"github.com/piresc/taximeter/internal/pkg/database"
	"github.com/piresc/taximeter/internal/pkg/models"
	natspkg "github.com/piresc/taximeter/internal/pkg/nats"
	"github.com/piresc/taximeter/services/ride"
)

type natsFeedGW struct {
	client  *natspkg.Client
	subject string
}

// NewNATSFeedGW creates a feed publishing every ride view as JSON on subject
func NewNATSFeedGW(client *natspkg.Client, subject string) ride.RideFeedGW {
	if subject == "" {
		subject = constants.SubjectRideUpdated
	}
	return &natsFeedGW{client: client, subject: subject}
}

// PublishRideUpdate publishes view on the feed subject
func (g *natsFeedGW) PublishRideUpdate(ctx context.Context, view *models.RideView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to marshal ride view: %w", err)
	}
	return g.client.Publish(g.subject, data)
}

type redisFeedGW struct {
	client *database.RedisClient
	key    string
	ttl    time.Duration
}

// NewRedisFeedGW creates a feed mirroring the current ride view into a Redis hash
func NewRedisFeedGW(client *database.RedisClient, key string, ttl time.Duration) ride.RideFeedGW {
	if key == "" {
		key = constants.KeyCurrentRide
	}
	return &redisFeedGW{client: client, key: key, ttl: ttl}
}

// PublishRideUpdate stores view under the feed key. An empty view removes the key.
func (g *redisFeedGW) PublishRideUpdate(ctx context.Context, view *models.RideView) error {
	if view == nil || view.Status == "" {
		return g.client.Delete(ctx, g.key)
	}

	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to marshal ride view: %w", err)
	}

	updatedAt := ""
	if view.UpdatedAt != nil {
		updatedAt = models.FormatTime(*view.UpdatedAt)
	}

	fields := map[string]interface{}{
		constants.FieldView:       string(data),
		constants.FieldStatus:     string(view.Status),
		constants.FieldTotalPrice: strconv.FormatFloat(view.TotalPrice, 'f', -1, 64),
		constants.FieldUpdatedAt:  updatedAt,
	}
	if err := g.client.HSetWithTTL(ctx, g.key, fields, g.ttl); err != nil {
		return fmt.Errorf("failed to store ride view: %w", err)
	}
	return nil
}
