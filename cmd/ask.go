package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	model "veritas/internal/model/generation"
	"veritas/internal/pkg/storagefactory"
	"veritas/internal/server"
)

var askCmd = &cobra.Command{
	Use:   "ask [prompt]",
	Short: "Run a single generation and print the response",
	Long: `Run the generation pipeline once with the given prompt, using the same
configuration, reference document and error handling as the API server.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

var askOpts struct {
	model           string
	temperature     float64
	topP            float64
	topK            int
	maxOutputTokens int
	asJSON          bool
}

func init() {
	rootCmd.AddCommand(askCmd)

	flags := askCmd.Flags()
	flags.StringVar(&askOpts.model, "model", "", "model name (default: ai.model)")
	flags.Float64Var(&askOpts.temperature, "temperature", 0, "sampling temperature [0, 1]")
	flags.Float64Var(&askOpts.topP, "top-p", 0, "nucleus sampling [0, 1]")
	flags.IntVar(&askOpts.topK, "top-k", 0, "top-k sampling (>= 1)")
	flags.IntVar(&askOpts.maxOutputTokens, "max-output-tokens", 0, "maximum output tokens (>= 1)")
	flags.BoolVar(&askOpts.asJSON, "json", false, "print the full JSON response")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storagefactory.NewStorage(ctx, &cfg.Storage)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize storage, reference document disabled")
	}

	svc, provider := server.NewPipeline(cfg, store, nil)
	defer provider.Close()

	prompt := strings.Join(args, " ")
	req := &model.GenerateRequest{Prompt: &prompt, Model: askOpts.model}

	// 只传递显式指定的采样参数，其余使用配置默认值
	flags := cmd.Flags()
	if flags.Changed("temperature") {
		req.Temperature = &askOpts.temperature
	}
	if flags.Changed("top-p") {
		req.TopP = &askOpts.topP
	}
	if flags.Changed("top-k") {
		req.TopK = &askOpts.topK
	}
	if flags.Changed("max-output-tokens") {
		req.MaxOutputTokens = &askOpts.maxOutputTokens
	}

	resp, err := svc.Generate(ctx, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if askOpts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	_, err = fmt.Fprintln(out, resp.Response)
	return err
}
