// internal/adapter/events/nats.go

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"foodtrend/internal/domain/trend"
)

// Conn is the subset of *nats.Conn the publisher uses
type Conn interface {
	Publish(subj string, data []byte) error
}

// TrendsAnalyzedEvent is published after every scoring run
type TrendsAnalyzedEvent struct {
	Location     string       `json:"location"`
	TopTerms     []string     `json:"top_terms"`
	Scores       trend.Scores `json:"scores"`
	PostCount    int          `json:"post_count"`
	AnalysisDate string       `json:"analysis_date"`
	WeekendDate  string       `json:"weekend_date"`
}

// RunCompletedEvent is published after a pipeline run produced a report
type RunCompletedEvent struct {
	RunID          string    `json:"run_id"`
	Location       string    `json:"location"`
	RestaurantType string    `json:"restaurant_type"`
	Demo           bool      `json:"demo"`
	Headline       string    `json:"headline"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// Publisher publishes pipeline events under a topic prefix
type Publisher struct {
	conn  Conn
	topic string
}

// NewPublisher creates a publisher. A nil conn yields a publisher that drops events.
func NewPublisher(conn Conn, topic string) *Publisher {
	return &Publisher{
		conn:  conn,
		topic: topic,
	}
}

// PublishTrends publishes <topic>.trends.analyzed
func (p *Publisher) PublishTrends(ctx context.Context, location string, r trend.Report) error {
	return p.publish("trends.analyzed", TrendsAnalyzedEvent{
		Location:     location,
		TopTerms:     r.TopTerms,
		Scores:       r.Scores,
		PostCount:    r.PostCount,
		AnalysisDate: r.AnalysisDate,
		WeekendDate:  r.WeekendDate,
	})
}

// PublishRunCompleted publishes <topic>.run.completed
func (p *Publisher) PublishRunCompleted(ctx context.Context, event RunCompletedEvent) error {
	return p.publish("run.completed", event)
}

func (p *Publisher) publish(suffix string, payload any) error {
	if p == nil || p.conn == nil {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshaling %s event: %w", suffix, err)
	}

	subject := fmt.Sprintf("%s.%s", p.topic, suffix)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("error publishing to %s: %w", subject, err)
	}
	return nil
}

// ConnectConfig holds NATS connection options
type ConnectConfig struct {
	URL            string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectTimeout time.Duration
}

// Connect dials NATS with reconnect logging
func Connect(cfg ConnectConfig, logger *slog.Logger) (*nats.Conn, error) {
	options := []nats.Option{
		nats.Name("foodtrend"),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.Timeout(cfg.ConnectTimeout),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(cfg.URL, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to NATS: %w", err)
	}
	return nc, nil
}
