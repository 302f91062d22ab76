package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// Config holds NATS connection settings for the event publisher.
type Config struct {
	URL           string
	SubjectPrefix string
	MaxReconnects int
	ReconnectWait time.Duration
}

func DefaultConfig() Config {
	return Config{
		URL:           nats.DefaultURL,
		SubjectPrefix: "leagues.events",
		MaxReconnects: -1, // Infinite
		ReconnectWait: 2 * time.Second,
	}
}

// Publisher pushes league events onto per-league NATS subjects. It satisfies
// the Sink interfaces the domain apps declare.
type Publisher struct {
	nc     *nats.Conn
	config Config
}

// NewPublisher connects to NATS with reconnect handling and returns a
// publisher ready to use.
func NewPublisher(cfg Config) (*Publisher, error) {
	opts := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	return &Publisher{nc: nc, config: cfg}, nil
}

// Notify publishes one event to the league's subject.
func (p *Publisher) Notify(ctx context.Context, leagueID uuid.UUID, eventType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	env := Envelope{
		EventID:   uuid.New(),
		EventType: eventType,
		LeagueID:  leagueID,
		Timestamp: time.Now().UTC(),
		Payload:   raw,
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	subject := Subject(p.config.SubjectPrefix, leagueID)
	if err := p.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("publish to %s: %w", subject, err)
	}

	log.Debug().
		Str("subject", subject).
		Str("event_type", eventType).
		Str("event_id", env.EventID.String()).
		Msg("published league event")
	return nil
}

// Conn exposes the underlying connection so the gateway can subscribe on the
// same transport.
func (p *Publisher) Conn() *nats.Conn {
	return p.nc
}

func (p *Publisher) Close() error {
	if p.nc != nil {
		p.nc.Close()
	}
	return nil
}
