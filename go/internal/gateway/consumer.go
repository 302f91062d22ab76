package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pick6/go/internal/events"
)

// Consumer subscribes to league event subjects and forwards events to the
// WebSocket rooms of the leagues they belong to.
type Consumer struct {
	nc      *nats.Conn
	prefix  string
	manager *ConnectionManager

	sub *nats.Subscription
}

// NewConsumer creates a consumer over an existing NATS connection.
func NewConsumer(nc *nats.Conn, subjectPrefix string, manager *ConnectionManager) *Consumer {
	return &Consumer{
		nc:      nc,
		prefix:  subjectPrefix,
		manager: manager,
	}
}

// Start subscribes to all league subjects under the configured prefix.
func (c *Consumer) Start() error {
	subject := c.prefix + ".>"
	sub, err := c.nc.Subscribe(subject, c.handleMessage)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}
	c.sub = sub

	log.Info().Str("subject", subject).Msg("gateway event consumer started")
	return nil
}

// Stop drains the subscription.
func (c *Consumer) Stop() error {
	if c.sub == nil {
		return nil
	}
	if err := c.sub.Drain(); err != nil {
		return fmt.Errorf("failed to drain subscription: %w", err)
	}
	return nil
}

func (c *Consumer) handleMessage(msg *nats.Msg) {
	var envelope events.Envelope
	if err := json.Unmarshal(msg.Data, &envelope); err != nil {
		log.Error().
			Err(err).
			Str("subject", msg.Subject).
			Msg("failed to unmarshal event envelope")
		return
	}

	c.manager.BroadcastToLeague(envelope.LeagueID, msg.Data)

	log.Debug().
		Str("event_type", envelope.EventType).
		Str("league_id", envelope.LeagueID.String()).
		Msg("event forwarded to league room")
}
