package main

import (
	"os"

	"github.com/finchat-kr/finchat/cmd/finchat/commands"
)

// main is the entry point for the finchat CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/finchat [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
