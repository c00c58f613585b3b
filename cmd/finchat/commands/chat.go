package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finchat-kr/finchat/internal/chat"
	"github.com/finchat-kr/finchat/internal/external/googlesearch"
	"github.com/finchat-kr/finchat/internal/external/openai"
	"github.com/finchat-kr/finchat/internal/search"
	"github.com/finchat-kr/finchat/pkg/config"
	"github.com/finchat-kr/finchat/pkg/logger"
)

// chatCmd runs an interactive chat session in the terminal
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "대화형 챗봇 실행",
	Long: `웹 검색이 가능한 챗봇과 터미널에서 대화합니다.

종료하려면 'exit' 또는 'quit'를 입력하세요.

Example:
  go run ./cmd/finchat chat`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	searchClient := googlesearch.NewClient(cfg.Google, log)
	limiter := search.NewLimiter(cfg.Search.PerSecond, cfg.Search.PerDay)
	searchService := search.NewService(searchClient, limiter, log)

	openaiClient := openai.NewClient(cfg.OpenAI, log)
	chatService := chat.NewService(openaiClient, searchService, log)

	fmt.Println("========================================")
	fmt.Println("finchat 챗봇")
	fmt.Println("(종료하려면 'exit' 또는 'quit'를 입력하세요)")
	fmt.Println("========================================")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n질문을 입력하세요: ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "exit" || question == "quit" {
			break
		}

		answer, err := chatService.Ask(context.Background(), question)
		if err != nil {
			fmt.Printf("\n오류: %v\n", err)
			continue
		}
		fmt.Println("\n응답:")
		fmt.Println(answer)
	}

	return scanner.Err()
}
