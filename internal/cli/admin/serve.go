package admin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/api/handlers"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/config"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/generator"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/knowledge"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/openai"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/server"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/service"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/storage"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/telemetry"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the unity generator API server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize Sentry with tracing if SENTRY_DSN is set
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		environment := os.Getenv("ENVIRONMENT")
		if environment == "" {
			environment = "development"
		}

		// Default to 10% sampling in production, 100% in development
		sampleRate := 0.1
		if environment == "development" {
			sampleRate = 1.0
		}

		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:              dsn,
			Environment:      environment,
			TracesSampleRate: sampleRate,
		})
		if err != nil {
			log.Printf("telemetry init failed (continuing without tracing): %v", err)
		} else {
			defer shutdownTelemetry()
		}
	}

	portFlag, _ := cmd.Flags().GetString("port")
	if portFlag != "" && portFlag != "8080" {
		cfg.Port = portFlag
	}

	store, err := knowledge.NewStore(cfg.KnowledgeDir)
	if err != nil {
		return fmt.Errorf("failed to open knowledge store: %w", err)
	}

	retrievalSvc, err := service.NewRetrievalService(store)
	if err != nil {
		return fmt.Errorf("failed to build retrieval index: %w", err)
	}
	stats := retrievalSvc.Stats(ctx)
	log.Printf("knowledge base loaded: %d items indexed", stats.TotalItems)

	var enhancerSvc *service.EnhancerService
	if cfg.HasOpenAI() {
		llm := openai.NewClient(cfg.OpenAIAPIKey)
		enhancerSvc = service.NewEnhancerService(llm, retrievalSvc)
		log.Println("idea enhancement enabled")
	} else {
		log.Println("UNIGEN_OPENAI_API_KEY not set, idea enhancement disabled")
	}

	var archiveStore generator.ArchiveStore
	if cfg.HasS3() {
		s3Client, err := storage.NewS3Client(ctx, storage.S3ClientConfig{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			Bucket:          cfg.S3Bucket,
		})
		if err != nil {
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		if err := s3Client.EnsureBucket(ctx); err != nil {
			return fmt.Errorf("failed to ensure S3 bucket: %w", err)
		}
		archiveStore = s3Client
		log.Printf("project archives stored in S3 bucket %s", cfg.S3Bucket)
	} else {
		log.Printf("project archives stored locally in %s", cfg.ProjectsDir)
	}

	gen, err := generator.New(cfg.ProjectsDir, archiveStore)
	if err != nil {
		return fmt.Errorf("failed to create project generator: %w", err)
	}

	router := server.NewRouter(server.RouterConfig{
		RAGHandler:      handlers.NewRAGHandler(retrievalSvc),
		EnhanceHandler:  handlers.NewEnhanceHandler(enhancerService(enhancerSvc)),
		GenerateHandler: handlers.NewGenerateHandler(gen),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("server exited")
	return nil
}

// enhancerService keeps the handler's interface value nil when the service
// pointer is nil, so the handler can report the feature as unavailable.
func enhancerService(svc *service.EnhancerService) handlers.IdeaEnhancer {
	if svc == nil {
		return nil
	}
	return svc
}
