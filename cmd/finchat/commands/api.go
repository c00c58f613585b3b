package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/finchat-kr/finchat/internal/api"
	"github.com/finchat-kr/finchat/internal/api/handlers"
	"github.com/finchat-kr/finchat/internal/chat"
	"github.com/finchat-kr/finchat/internal/external/googlesearch"
	"github.com/finchat-kr/finchat/internal/external/openai"
	"github.com/finchat-kr/finchat/internal/search"
	"github.com/finchat-kr/finchat/pkg/config"
	"github.com/finchat-kr/finchat/pkg/logger"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

Endpoints:
  GET  /health       - Health check
  GET  /api/stock    - 주가 데이터 조회
  GET  /api/search   - 웹 검색
  POST /api/chat     - 챗봇 질의

Example:
  go run ./cmd/finchat api
  go run ./cmd/finchat api --port 8080`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (기본값: PORT 환경변수)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== finchat API Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Create stock service with its providers
	stockService := buildStockService(cfg, log)

	// 4. Create rate-limited search service
	searchClient := googlesearch.NewClient(cfg.Google, log)
	limiter := search.NewLimiter(cfg.Search.PerSecond, cfg.Search.PerDay)
	searchService := search.NewService(searchClient, limiter, log)

	// 5. Create chat service
	openaiClient := openai.NewClient(cfg.OpenAI, log)
	chatService := chat.NewService(openaiClient, searchService, log)

	// 6. Create handlers
	stockHandler := handlers.NewStockHandler(stockService, log)
	searchHandler := handlers.NewSearchHandler(searchService, log)
	chatHandler := handlers.NewChatHandler(chatService, log)

	// 7. Create router
	router := api.NewRouter(stockHandler, searchHandler, chatHandler, log)

	// 8. Create server
	server := api.New(cfg, log, router)

	// 9. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET  /health")
	fmt.Println("  GET  /api/stock?symbol=삼성전자&start=2024-01-01&end=2024-01-31")
	fmt.Println("  GET  /api/search?q=삼성전자+실적")
	fmt.Println("  POST /api/chat")
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
