package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"ai-deploy-dashboard/internal/config"
	"ai-deploy-dashboard/internal/models"
)

type Service struct {
	conn   *nats.Conn
	cfg    *config.Config
	prefix string
}

func NewService(cfg *config.Config) (*Service, error) {
	opts := []nats.Option{
		nats.Name("ai-deploy-dashboard"),
		nats.Timeout(cfg.NatsConnectTimeout),
		nats.ReconnectWait(cfg.NatsReconnectWait),
		nats.MaxReconnects(cfg.NatsMaxReconnects),
		nats.DrainTimeout(cfg.NatsDrainTimeout),
	}

	conn, err := nats.Connect(cfg.NatsURL, opts...)
	if err != nil {
		return nil, err
	}

	log.Info().Str("url", cfg.NatsURL).Msg("NATS connection established")

	return &Service{
		conn:   conn,
		cfg:    cfg,
		prefix: cfg.ResultsSubjectPrefix,
	}, nil
}

// Subject returns the subject result events of kind are published on.
func Subject(prefix, kind string) string {
	if prefix == "" {
		return kind
	}
	return prefix + "." + kind
}

func (s *Service) Publish(subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return s.conn.Publish(subject, payload)
}

// PublishResult publishes a completed detection or classification, stamped
// with the instance that served it.
func (s *Service) PublishResult(event models.ResultEvent) error {
	return s.Publish(Subject(s.prefix, event.Kind), stamp(event, s.cfg.InstanceID))
}

func stamp(event models.ResultEvent, instanceID string) models.ResultEvent {
	meta := make(map[string]string, len(event.Metadata)+1)
	for k, v := range event.Metadata {
		meta[k] = v
	}
	meta["instance_id"] = instanceID
	event.Metadata = meta
	return event
}

func (s *Service) IsConnected() bool {
	return s.conn != nil && s.conn.IsConnected()
}

func (s *Service) Shutdown(ctx context.Context) error {
	if s.conn == nil {
		return nil
	}

	if err := s.conn.Drain(); err != nil {
		log.Warn().Err(err).Msg("Failed to drain NATS connection gracefully, closing immediately")
		s.conn.Close()
		return nil
	}

	// Drain is asynchronous; wait for it or give up when ctx ends.
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for !s.conn.IsClosed() {
		select {
		case <-ctx.Done():
			s.conn.Close()
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
