// @title         LegaLuna API
// @version       1.0
// @description   Bilingual (English/Hindi) legal question answering over Indian law.
// @BasePath      /
// @schemes       http
// @host          localhost:5000
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Shared API key of the chat widget.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/PJRenu/LegaLuna/api/http"
	"github.com/PJRenu/LegaLuna/api/http/handlers"
	_ "github.com/PJRenu/LegaLuna/docs"
	"github.com/PJRenu/LegaLuna/pkg/assistant"
	"github.com/PJRenu/LegaLuna/pkg/cache"
	"github.com/PJRenu/LegaLuna/pkg/config"
	"github.com/PJRenu/LegaLuna/pkg/health"
	"github.com/PJRenu/LegaLuna/pkg/health/checkers"
	"github.com/PJRenu/LegaLuna/pkg/knowledge"
	"github.com/PJRenu/LegaLuna/pkg/llm"
	"github.com/PJRenu/LegaLuna/pkg/llm/gemini"
	"github.com/PJRenu/LegaLuna/pkg/llm/openrouter"
	"github.com/PJRenu/LegaLuna/pkg/logger"
	pgrepo "github.com/PJRenu/LegaLuna/pkg/repository/postgres"
	"github.com/PJRenu/LegaLuna/pkg/security/apikey"
	"github.com/PJRenu/LegaLuna/pkg/security/ratelimit"
	"github.com/PJRenu/LegaLuna/pkg/storage/postgres"
	"github.com/PJRenu/LegaLuna/pkg/storage/redis"
	"github.com/PJRenu/LegaLuna/pkg/translate"
	"github.com/PJRenu/LegaLuna/pkg/translate/libretranslate"
)

func main() {
	// Load configuration from env/.env
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var readinessCheckers []health.Checker

	// Knowledge base: directory (or built-in samples), optionally mirrored in PostgreSQL.
	docs, err := knowledge.LoadDir(cfg.DocsDir, logger.For("knowledge"))
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DocsDir).Msg("load legal documents")
	}
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres connect")
		}
		defer pool.Close()
		// Initialize the repository (also ensures DB schema).
		repo, err := pgrepo.NewDocumentRepository(pool)
		if err != nil {
			log.Fatal().Err(err).Msg("init document repo")
		}
		if docs, err = knowledge.Sync(ctx, repo, docs); err != nil {
			log.Fatal().Err(err).Msg("sync legal documents")
		}
		readinessCheckers = append(readinessCheckers, checkers.NewPostgresChecker(pool))
	}
	index := knowledge.NewIndex(docs)
	readinessCheckers = append(readinessCheckers, checkers.NewKnowledgeChecker(index))
	log.Info().Int("documents", index.Len()).Msg("knowledge index built")

	// Answer cache: Redis when configured, in-process LRU otherwise.
	var answers cache.Cache = cache.Nop{}
	switch {
	case cfg.RedisURL != "":
		client, err := redis.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect")
		}
		defer client.Close()
		answers = cache.NewRedis(client, "legaluna:answer:", cfg.CacheTTL, logger.For("cache"))
		readinessCheckers = append(readinessCheckers, checkers.NewRedisChecker(client))
	case cfg.CacheSize > 0:
		lruCache, err := cache.NewLRU(cfg.CacheSize, cfg.CacheTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("init answer cache")
		}
		answers = lruCache
	}

	var remote translate.Translator
	if cfg.LibreTranslateURL != "" {
		remote = libretranslate.New(cfg.LibreTranslateURL, cfg.LibreTranslateKey)
	}
	translator := translate.WithGlossary(remote, logger.For("translate"))

	model, err := buildModel(ctx, cfg.LLM)
	if err != nil {
		log.Fatal().Err(err).Msg("init llm providers")
	}

	assistantUC := assistant.NewService(index, model, translator, answers, logger.For("assistant"))

	app := fiber.New(fiber.Config{
		AppName:      "LegaLuna API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New())

	http.Register(app,
		handlers.NewHealthHandler(health.NewService(readinessCheckers...)),
		handlers.NewChatHandler(assistantUC, logger.For("http")),
		handlers.NewDocumentsHandler(index),
		ratelimit.NewMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst),
		apikey.NewMiddleware(cfg.APIKey),
	)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	// Start server
	log.Info().Str("port", cfg.Port).Msg("HTTP server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// buildModel assembles the providers named in cfg.Providers into a fallback
// chain. Providers without credentials are skipped; nil means none is usable.
func buildModel(ctx context.Context, cfg config.LLMConfig) (llm.ChatModel, error) {
	var models []llm.ChatModel
	for _, name := range cfg.Providers {
		switch name {
		case "openrouter":
			if cfg.OpenRouterAPIKey == "" {
				log.Warn().Msg("OPENROUTER_API_KEY not set, skipping openrouter")
				continue
			}
			models = append(models, openrouter.New(
				cfg.OpenRouterAPIKey,
				cfg.OpenRouterBase,
				cfg.OpenRouterModel,
				cfg.OpenRouterAppTitle,
				cfg.OpenRouterReferer,
			))
		case "gemini":
			if cfg.GeminiAPIKey == "" {
				log.Warn().Msg("GEMINI_API_KEY not set, skipping gemini")
				continue
			}
			client, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
			if err != nil {
				return nil, err
			}
			models = append(models, client)
		default:
			return nil, fmt.Errorf("unknown llm provider %q", name)
		}
	}
	if len(models) == 0 {
		log.Warn().Msg("no llm provider configured, answers are extractive")
		return nil, nil
	}
	return llm.NewFallback(logger.For("llm"), models[0], models[1:]...), nil
}
