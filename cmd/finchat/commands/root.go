package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "finchat",
	Short: "finchat - 주가 데이터 수집 및 금융 챗봇 백엔드",
	Long: `finchat Unified CLI

한국(data.go.kr)과 미국(Alpha Vantage) 주가 데이터를 수집하고,
웹 검색이 가능한 금융 챗봇 API를 제공합니다.

Usage:
  go run ./cmd/finchat [command]

Examples:
  go run ./cmd/finchat api
  go run ./cmd/finchat quote 삼성전자 --start 2024-01-01 --end 2024-01-31
  go run ./cmd/finchat search "삼성전자 실적"`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
