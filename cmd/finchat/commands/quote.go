package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finchat-kr/finchat/pkg/config"
	"github.com/finchat-kr/finchat/pkg/logger"
)

// quoteCmd fetches daily prices for one symbol from the terminal
var quoteCmd = &cobra.Command{
	Use:   "quote [symbol]",
	Short: "주가 데이터 조회",
	Long: `지정한 종목의 일별 주가 데이터를 조회합니다.

한국 종목은 이름(삼성전자) 또는 6자리 코드(005930),
미국 종목은 티커(AAPL) 또는 이름(apple)으로 조회할 수 있습니다.

Example:
  go run ./cmd/finchat quote 삼성전자 --start 2024-01-01 --end 2024-01-31
  go run ./cmd/finchat quote AAPL --start 2024-01-01 --end 2024-01-31`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

var (
	quoteStart string
	quoteEnd   string
)

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().StringVar(&quoteStart, "start", "", "조회 시작일 (YYYY-MM-DD)")
	quoteCmd.Flags().StringVar(&quoteEnd, "end", "", "조회 종료일 (YYYY-MM-DD)")
	quoteCmd.MarkFlagRequired("start")
	quoteCmd.MarkFlagRequired("end")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	start, err := time.Parse("2006-01-02", quoteStart)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	end, err := time.Parse("2006-01-02", quoteEnd)
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}
	if !start.Before(end) {
		return fmt.Errorf("--start must be before --end")
	}

	service := buildStockService(cfg, log)
	result := service.FetchStockData(context.Background(), args[0], start, end)

	if !result.Success {
		fmt.Println("❌ " + result.ErrorMessage)
		return nil
	}

	fmt.Printf("=== %s (%s) ===\n", args[0], result.Market)
	fmt.Printf("%-12s %12s %12s %12s %12s %14s\n", "Date", "Open", "High", "Low", "Close", "Volume")
	for _, p := range result.Data {
		fmt.Printf("%-12s %11.2f%s %11.2f%s %11.2f%s %11.2f%s %14d\n",
			p.Date.Format("2006-01-02"),
			p.Open, p.Currency, p.High, p.Currency, p.Low, p.Currency, p.Close, p.Currency,
			p.Volume)
	}
	fmt.Printf("\n총 %d 거래일\n", len(result.Data))

	return nil
}
