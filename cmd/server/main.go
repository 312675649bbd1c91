package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/marketflowhq/marketflow/internal/agent"
	"github.com/marketflowhq/marketflow/internal/config"
	"github.com/marketflowhq/marketflow/internal/database"
	campaignendpoint "github.com/marketflowhq/marketflow/internal/endpoint"
	"github.com/marketflowhq/marketflow/internal/logger"
	"github.com/marketflowhq/marketflow/internal/metrics"
	"github.com/marketflowhq/marketflow/internal/middleware"
	"github.com/marketflowhq/marketflow/internal/navigation"
	"github.com/marketflowhq/marketflow/internal/service"
	"github.com/marketflowhq/marketflow/internal/store"
	"github.com/marketflowhq/marketflow/internal/transport"
)

const VERSION = "1.0.0"

func init() {
	config.LoadConfigs()
}

func main() {
	log := logger.New(logger.Config{
		Service: "marketflow",
		Version: VERSION,
	})

	m := metrics.NewPrometheusMetrics()

	snapshot, cleanup, err := newSnapshot(log)
	if err != nil {
		level.Error(log).Log("msg", "failed to initialize snapshot backend", "err", err)
		os.Exit(1)
	}
	if cleanup != nil {
		defer cleanup()
	}

	snapshot = store.NewInstrumentedSnapshot(snapshot, m)
	campaignStore := store.NewInstrumentedStore(store.New(snapshot, log), m)

	agentCfg := config.AppConfigInstance.AgentConfig
	gateway := agent.NewInstrumentedClient(
		agent.NewClient(agentCfg.BaseURL, agentCfg.Timeout),
		m,
	)

	var orchestrator service.CampaignOrchestrator = service.NewOrchestrator(
		campaignStore,
		gateway,
		navigation.New(),
		service.Config{
			ContentAgentID: agentCfg.ContentAgentID,
			VisualAgentID:  agentCfg.VisualAgentID,
		},
	)
	orchestrator = middleware.NewServiceMetricsMiddleware(m)(orchestrator)
	orchestrator = middleware.NewLoggingMiddleware(log)(orchestrator)

	endpoints := campaignendpoint.MakeCampaignEndpoints(orchestrator)
	handler := transport.NewHTTPHandler(endpoints)

	handler = middleware.NewMetricsMiddleware(m).Middleware(handler)
	handler = middleware.NewRequestIDMiddleware().Middleware(handler)

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", config.AppConfigInstance.GeneralConfig.Port),
		Handler:     handler,
		ReadTimeout: 30 * time.Second,
		// Agent invocations are slow; the write timeout must outlive them
		WriteTimeout: agentCfg.Timeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	level.Info(log).Log("msg", "starting server", "port", config.AppConfigInstance.GeneralConfig.Port)
	if err := srv.ListenAndServe(); err != nil {
		level.Error(log).Log("msg", "failed to serve http server", "err", err)
		os.Exit(1)
	}
}

// newSnapshot builds the configured snapshot backend. The cleanup function is
// non-nil only for backends holding external connections.
func newSnapshot(log kitlog.Logger) (store.Snapshot, func(), error) {
	cfg := config.AppConfigInstance.SnapshotConfig

	switch cfg.Backend {
	case "redis":
		snapshot, err := store.NewRedisSnapshot(store.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Key:      cfg.RedisKey,
		})
		if err != nil {
			return nil, nil, err
		}
		level.Info(log).Log("msg", "using redis snapshot backend", "addr", cfg.RedisAddr)
		return snapshot, nil, nil

	case "postgres":
		db, cleanup, err := database.Initialize(config.AppConfigInstance.DatabaseConfig, "migrations")
		if err != nil {
			return nil, nil, err
		}
		level.Info(log).Log("msg", "using postgres snapshot backend")
		return store.NewPostgresSnapshot(db), cleanup, nil

	case "file":
		level.Info(log).Log("msg", "using file snapshot backend", "path", cfg.FilePath)
		return store.NewFileSnapshot(cfg.FilePath), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown snapshot backend: %s", cfg.Backend)
	}
}
