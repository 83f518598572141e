package server

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"resume-grader/internal/analyses"
	"resume-grader/internal/history"
	"resume-grader/internal/llm"
	"resume-grader/internal/llm/gemini"
	"resume-grader/internal/llm/openai"
	"resume-grader/internal/shared/config"
	"resume-grader/internal/shared/metrics"
	"resume-grader/internal/shared/server/middleware"
	"resume-grader/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	historyStore := history.NewMemoryStore()
	svc := &analyses.Service{
		Cache: analyses.NewCache(),
		LLM:   NewLLMClient(cfg),
	}
	analysisHandler := analyses.NewHandler(svc, historyStore)
	historyHandler := history.NewHandler(historyStore)

	limiter := middleware.NewRateLimiter(nil)
	analyzeRule := middleware.RateLimitRule{Rate: 0.5, Burst: 5}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	analyzeGroup := api.Group("", middleware.RateLimit(limiter, analyzeRule))
	analysisHandler.RegisterRoutes(analyzeGroup)
	historyHandler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

// NewLLMClient builds the configured LLM provider, or nil when no credential
// is available (the heuristic fallback then handles every analysis).
func NewLLMClient(cfg config.Config) llm.Client {
	if cfg.APIKey() == "" {
		log.Printf("no LLM credential configured, analyses will use the heuristic fallback")
		return nil
	}
	switch cfg.LLMProvider {
	case "gemini":
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			log.Printf("gemini client init failed, using heuristic fallback: %v", err)
			return nil
		}
		return client
	case "openai":
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
		if err != nil {
			log.Printf("openai client init failed, using heuristic fallback: %v", err)
			return nil
		}
		return client
	default:
		return nil
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
