package di

import (
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"foodtrend/internal/adapter/events"
	"foodtrend/internal/adapter/llm"
	"foodtrend/internal/adapter/source"
	"foodtrend/internal/adapter/storage"
	"foodtrend/internal/config"
	"foodtrend/internal/domain/trend"
	"foodtrend/internal/service/listening"
	"foodtrend/internal/service/pipeline"
)

// ApplicationComponents holds all wired dependencies for the application
type ApplicationComponents struct {
	Source   *source.MockSource
	Detector *listening.TrendDetector
	Pipeline *pipeline.Pipeline
	RunStore *storage.RunStore

	natsConn *nats.Conn
}

// NewApplicationComponents wires all dependencies from config. NATS is dialed
// only when a URL is configured.
func NewApplicationComponents(cfg config.Config, logger *slog.Logger) (*ApplicationComponents, error) {
	mockCfg := source.DefaultMockConfig()
	mockCfg.JitterMin = cfg.Trend.JitterMin
	mockCfg.JitterMax = cfg.Trend.JitterMax

	postSource, err := source.NewMockSource(mockCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create post source: %w", err)
	}

	var (
		natsConn  *nats.Conn
		publisher *events.Publisher
	)
	if cfg.NATS.URL != "" {
		natsConn, err = events.Connect(events.ConnectConfig{
			URL:            cfg.NATS.URL,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectTimeout: cfg.NATS.ConnectTimeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		publisher = events.NewPublisher(natsConn, cfg.NATS.EventsTopic)
	}

	analyzer := listening.NewAnalyzer(trend.DefaultVocabulary(), listening.AnalyzerConfig{
		FloorNegativeLikes: cfg.Trend.FloorNegativeLikes,
	})

	// A nil *events.Publisher must not be stored in the interface fields
	var (
		trendPublisher listening.EventPublisher
		runPublisher   pipeline.RunPublisher
	)
	if publisher != nil {
		trendPublisher = publisher
		runPublisher = publisher
	}

	detector := listening.NewTrendDetector(postSource, analyzer, trendPublisher, logger)

	generator := llm.NewAnthropicClient(cfg.Suggest.BaseURL, cfg.Suggest.APIKey, cfg.Suggest.Model, cfg.Suggest.Timeout)
	requester := llm.NewSuggestionRequester(generator, llm.RequesterConfig{
		MaxTokens: cfg.Suggest.MaxTokens,
		Timeout:   cfg.Suggest.Timeout,
	}, logger)

	runStore, err := storage.NewRunStore(cfg.Cache.RunCacheSize)
	if err != nil {
		if natsConn != nil {
			natsConn.Close()
		}
		return nil, err
	}

	return &ApplicationComponents{
		Source:   postSource,
		Detector: detector,
		Pipeline: pipeline.New(detector, requester, runPublisher, logger),
		RunStore: runStore,
		natsConn: natsConn,
	}, nil
}

// Close releases external connections
func (c *ApplicationComponents) Close() {
	if c.natsConn != nil {
		c.natsConn.Close()
	}
}
