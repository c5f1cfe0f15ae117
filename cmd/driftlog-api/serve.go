package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/driftlog/backend/internal/config"
	"github.com/driftlog/backend/internal/handlers"
	"github.com/driftlog/backend/internal/logger"
	"github.com/driftlog/backend/internal/middleware"
	"github.com/driftlog/backend/internal/narrator"
	"github.com/driftlog/backend/internal/repository"
	"github.com/driftlog/backend/internal/service"
	"github.com/driftlog/backend/pkg/supabase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Optional .env for local development; real deployments set env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if port != "" {
		cfg.Server.Port = port
	}

	logger.SetDefault(logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	}))
	log := logger.Default()

	log.Info("starting driftlog api server",
		logger.String("env", cfg.Server.Env),
		logger.String("storage_driver", cfg.Storage.Driver),
	)

	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	entryRepo, err := newEntryRepository(cfg, supabaseClient)
	if err != nil {
		return fmt.Errorf("failed to initialize entry store: %w", err)
	}

	entryNarrator := newNarrator(cfg)

	entryService := service.NewEntryService(entryRepo)
	insightService := service.NewInsightService(entryRepo, entryNarrator)

	entryHandler := handlers.NewEntryHandler(entryService)
	insightsHandler := handlers.NewInsightsHandler(insightService)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.Auth(supabaseClient))
		{
			protected.GET("/entries", entryHandler.ListEntries)
			protected.POST("/entries", entryHandler.CreateEntry)
			protected.GET("/entries/:id", entryHandler.GetEntry)
			protected.PATCH("/entries/:id", entryHandler.UpdateEntry)
			protected.DELETE("/entries/:id", entryHandler.DeleteEntry)

			protected.GET("/insights/summary", insightsHandler.GetSummary)
			protected.GET("/insights/correlation", insightsHandler.GetCorrelation)
			protected.GET("/insights/chartsdata", insightsHandler.GetChartsData)
			protected.GET("/insights/narrated", middleware.RateLimitNarrator(), insightsHandler.GetNarratedInsight)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// newEntryRepository selects the entry store from configuration: the
// Supabase PostgREST client by default, or a direct Postgres connection.
func newEntryRepository(cfg *config.Config, client *supabase.Client) (repository.EntryRepository, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		return repository.NewPostgresEntryRepository(cfg.Storage.DSN)
	default:
		return repository.NewEntryRepository(client), nil
	}
}

// newNarrator builds the insight narrator. Without an API key narration is
// disabled and insight endpoints degrade to their placeholder text.
func newNarrator(cfg *config.Config) narrator.Narrator {
	if cfg.Narrator.APIKey == "" {
		logger.Default().Warn("narrator api key not configured, narration disabled")
		return narrator.Disabled{}
	}
	return narrator.NewGemini(cfg.Narrator.APIKey, cfg.Narrator.Model, cfg.Narrator.Timeout())
}
