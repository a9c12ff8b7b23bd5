package main

import (
	"github.com/sabrebluedobie/Quickspin-API/internal/config"
	"github.com/sabrebluedobie/Quickspin-API/internal/generator"
	"github.com/sabrebluedobie/Quickspin-API/internal/handlers"
	pkgconfig "github.com/sabrebluedobie/Quickspin-API/pkg/config"
	"github.com/sabrebluedobie/Quickspin-API/pkg/llm"
	"github.com/sabrebluedobie/Quickspin-API/pkg/logging"
	"github.com/sabrebluedobie/Quickspin-API/pkg/monitoring"
	"github.com/sabrebluedobie/Quickspin-API/pkg/server"
	"github.com/sabrebluedobie/Quickspin-API/pkg/version"
)

func main() {
	logger := logging.NewLoggerWithService("quickspin")
	pkgconfig.LoadEnv(logger)

	cfg := config.LoadConfig()

	// Without a credential the service still starts; every request is
	// answered by the fallback synthesizer.
	var provider llm.Provider
	if cfg.LLM.APIKey != "" {
		var err error
		provider, err = llm.NewProvider(cfg.LLM)
		if err != nil {
			logger.WithError(err).Fatal("Failed to construct model provider")
		}
	} else {
		logger.Warn("No model API key found, running in fallback-only mode")
	}

	healthChecker := monitoring.NewHealthChecker("quickspin", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("quickspin", version.Version, version.GitCommit)

	healthChecker.AddCheck("model_credential", monitoring.CredentialHealthCheck(
		"model API key",
		cfg.LLM.APIKey,
		"no credential configured, serving fallback posts only",
	))

	app := server.SetupServiceRouter(logger, "quickspin", healthChecker, metricsCollector, cfg.AllowedOrigins)

	createMetrics := &handlers.CreateMetrics{
		CreateRequests: metricsCollector.NewCounter(
			"create_requests_total",
			"Create requests by generation mode",
			[]string{"mode"},
		),
	}

	gen := generator.New(generator.Config{
		Provider:   provider,
		Logger:     logger,
		ContactURL: cfg.ContactURL,
		Variants:   cfg.VariantCount,
		Timeout:    cfg.GenerationTimeout,
	})

	createHandler := handlers.NewCreateHandler(gen, logger, createMetrics)

	app.POST("/api/create", createHandler.Handle)

	serverConfig := server.DefaultConfig("quickspin", cfg.Port)
	if err := server.Start(serverConfig, app, logger); err != nil {
		logger.Fatal(err.Error())
	}
}
