// cmd/advisor-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"career-advisor/internal/api"
	"career-advisor/internal/common/auth"
	"career-advisor/internal/common/config"
	"career-advisor/internal/common/database"
	"career-advisor/internal/common/logger"
	"career-advisor/internal/common/observability"

	dataretrieve "career-advisor/internal/advisor/data-retrieve"
	interactionlog "career-advisor/internal/advisor/interaction-log"
	llmcomplete "career-advisor/internal/advisor/llm-complete"
	ratelimit "career-advisor/internal/advisor/rate-limit"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting advisor server...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New("advisor-server")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	// The skills-demand category degrades to empty if ES drops later; the
	// initial connection is still required so misconfiguration surfaces at
	// startup.
	esClient, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
	if err != nil {
		zapLog.Fatal("elasticsearch client failed", zap.Error(err))
	}
	zapLog.Info("Elasticsearch client initialized")

	// --- Init Redis with retry ---
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redisClient.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redisClient.Close()
	zapLog.Info("Redis connected successfully")

	// --- Auth verifier ---
	verifier := auth.NewHTTPVerifier(cfg.Auth.VerifyURL, config.GetDuration(cfg.Auth.Timeout))

	// --- Pipeline stages ---
	limiter := ratelimit.NewHandler(
		&ratelimit.Config{
			Limit:  cfg.Advice.RateLimit,
			Window: time.Duration(cfg.Advice.RateWindow) * time.Minute,
		},
		pg.DB, &rateLimitLoggerAdapter{log},
	)

	retriever := dataretrieve.NewHandler(
		&dataretrieve.Config{
			SkillsIndex:   cfg.Advice.SkillsIndex,
			CacheTTL:      time.Duration(cfg.Advice.CacheTTL) * time.Second,
			MarketLimit:   cfg.Advice.MarketLimit,
			SalaryLimit:   cfg.Advice.SalaryLimit,
			SkillsLimit:   cfg.Advice.SkillsLimit,
			BusinessLimit: cfg.Advice.BusinessLimit,
		},
		pg.DB, esClient, redisClient.Client, &dataRetrieveLoggerAdapter{log},
	)

	completer := llmcomplete.NewClient(
		&llmcomplete.Config{
			BaseURL:     cfg.LLM.BaseURL,
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			MaxTokens:   cfg.LLM.MaxTokens,
			Temperature: cfg.LLM.Temperature,
			Timeout:     config.GetDuration(cfg.LLM.Timeout),
			MaxRetries:  cfg.LLM.MaxRetries,
		},
		&llmCompleteLoggerAdapter{log},
	)
	if !completer.Configured() {
		zapLog.Warn("completion service is not configured; advice requests will fail until LLM_BASE_URL and LLM_API_KEY are set")
	}

	ilog := interactionlog.NewHandler(pg.DB, &interactionLogLoggerAdapter{log})
	profiles := api.NewProfileStore(pg.DB)

	// --- HTTP server ---
	apiLog := &apiLoggerAdapter{log}
	handler := api.NewAdviceHandler(limiter, profiles, retriever, completer, ilog, apiLog)
	server := api.NewServer(cfg, handler, verifier, pg.DB, obs, apiLog)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining requests...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down http server", zap.Error(err))
	}

	zapLog.Info("Advisor server stopped gracefully")
}

// Logger adapters for packages that declare their own Logger interfaces

type rateLimitLoggerAdapter struct {
	logger.Logger
}

func (a *rateLimitLoggerAdapter) With(fields map[string]interface{}) ratelimit.Logger {
	return &rateLimitLoggerAdapter{a.Logger.With(fields)}
}

type dataRetrieveLoggerAdapter struct {
	logger.Logger
}

func (a *dataRetrieveLoggerAdapter) With(fields map[string]interface{}) dataretrieve.Logger {
	return &dataRetrieveLoggerAdapter{a.Logger.With(fields)}
}

type llmCompleteLoggerAdapter struct {
	logger.Logger
}

func (a *llmCompleteLoggerAdapter) With(fields map[string]interface{}) llmcomplete.Logger {
	return &llmCompleteLoggerAdapter{a.Logger.With(fields)}
}

type interactionLogLoggerAdapter struct {
	logger.Logger
}

func (a *interactionLogLoggerAdapter) With(fields map[string]interface{}) interactionlog.Logger {
	return &interactionLogLoggerAdapter{a.Logger.With(fields)}
}

type apiLoggerAdapter struct {
	logger.Logger
}

func (a *apiLoggerAdapter) With(fields map[string]interface{}) api.Logger {
	return &apiLoggerAdapter{a.Logger.With(fields)}
}
