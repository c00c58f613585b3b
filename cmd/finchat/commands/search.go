package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finchat-kr/finchat/internal/external/googlesearch"
	"github.com/finchat-kr/finchat/internal/search"
	"github.com/finchat-kr/finchat/pkg/config"
	"github.com/finchat-kr/finchat/pkg/logger"
)

// searchCmd runs one web search from the terminal
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "웹 검색",
	Long: `Google Custom Search로 웹을 검색합니다.

Example:
  go run ./cmd/finchat search "삼성전자 실적"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	client := googlesearch.NewClient(cfg.Google, log)
	limiter := search.NewLimiter(cfg.Search.PerSecond, cfg.Search.PerDay)
	service := search.NewService(client, limiter, log)

	query := strings.Join(args, " ")
	results, err := service.Search(context.Background(), query)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("검색 결과가 없습니다.")
		return nil
	}

	for i, r := range results {
		fmt.Printf("%d. %s\n   %s\n   %s\n\n", i+1, r.Title, r.Link, r.Snippet)
	}

	return nil
}
