package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/scrimbot/internal/common/clock"
	"github.com/KirkDiggler/scrimbot/internal/common/uuid"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultSubjectPrefix is prepended to every event type
	DefaultSubjectPrefix = "scrimbot.events"

	sourceService = "scrimbot"
)

// Conn is the part of *nats.Conn the publisher needs
type Conn interface {
	Publish(subject string, data []byte) error
}

// Envelope wraps every published event
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	Timestamp     time.Time       `json:"timestamp"`
	SourceService string          `json:"source_service"`
	Payload       json.RawMessage `json:"payload"`
}

// NATSConfig holds configuration for the NATS publisher
type NATSConfig struct {
	Conn          Conn
	SubjectPrefix string
	Clock         clock.Clock
	UUID          uuid.UUID
}

// NATSPublisher publishes events as JSON envelopes on core NATS subjects
type NATSPublisher struct {
	conn          Conn
	subjectPrefix string
	clock         clock.Clock
	uuid          uuid.UUID
}

// NewNATSPublisher creates a new NATS event publisher
func NewNATSPublisher(cfg *NATSConfig) (*NATSPublisher, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Conn == nil {
		return nil, errors.New("nats connection cannot be nil")
	}

	prefix := cfg.SubjectPrefix
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}

	c := cfg.Clock
	if c == nil {
		c = &clock.DefaultClock{}
	}

	u := cfg.UUID
	if u == nil {
		u = uuid.New()
	}

	return &NATSPublisher{
		conn:          cfg.Conn,
		subjectPrefix: prefix,
		clock:         c,
		uuid:          u,
	}, nil
}

// Subject returns the subject an event type is published on
func (p *NATSPublisher) Subject(eventType EventType) string {
	return fmt.Sprintf("%s.%s", p.subjectPrefix, eventType)
}

// Publish serializes the event into an envelope and publishes it
func (p *NATSPublisher) Publish(ctx context.Context, event Event) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	envelope := &Envelope{
		EventID:       p.uuid.NewUUID(),
		EventType:     string(event.Type()),
		Timestamp:     p.clock.Now().UTC(),
		SourceService: sourceService,
		Payload:       payload,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event envelope: %w", err)
	}

	subject := p.Subject(event.Type())
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish event to NATS: %w", err)
	}

	log.WithFields(log.Fields{
		"eventType": event.Type(),
		"eventId":   envelope.EventID,
		"subject":   subject,
	}).Debug("Published event to NATS")

	return nil
}

// Connect dials NATS with reconnect handling and logrus-backed callbacks
func Connect(url string) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Name(sourceService),
		nats.MaxReconnects(10),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.WithError(err).Error("NATS disconnected with error")
			} else {
				log.Warn("NATS disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.WithError(err).Error("NATS async error")
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.WithField("url", url).Info("Connected to NATS")
	return nc, nil
}
