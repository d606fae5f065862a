// Package cli wires configuration, logging, telemetry and the service
// clients, then hands control to the Bubble Tea program.
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/danagreer/shopdeck/internal/app"
	"github.com/danagreer/shopdeck/internal/config"
	"github.com/danagreer/shopdeck/internal/logging"
	"github.com/danagreer/shopdeck/internal/services/catalog"
	"github.com/danagreer/shopdeck/internal/services/mail"
	"github.com/danagreer/shopdeck/internal/services/payment"
	"github.com/danagreer/shopdeck/internal/telemetry"
)

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "shopdeck",
	Short: "Terminal admin console for the shop",
	Long: `Shopdeck is a terminal admin console for the shop: browse orders,
inspect payment records, edit storefront content and send transactional
emails, without leaving the terminal.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default .shopdeck.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// Secrets come from the environment; .env is a convenience for dev
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Setup(cfg.LogDir, debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
	}
	defer func() { _ = closeLog() }()

	ctx := context.Background()
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		return fmt.Errorf("telemetry setup: %w", err)
	}
	defer func() { _ = shutdownTracing(ctx) }()

	httpClient := &http.Client{Timeout: 30 * time.Second}

	paymentClient := payment.NewClient(
		cfg.Payment.BaseURL, cfg.Payment.ClientID, cfg.Payment.Secret,
		httpClient, logger,
	)
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey, httpClient, logger)

	var sender mail.Sender
	if cfg.Mail.APIURL != "" && cfg.Mail.APIToken != "" {
		sender = mail.NewAPIProvider(
			cfg.Mail.APIURL, cfg.Mail.APIToken,
			cfg.Mail.From, cfg.Mail.FromName,
			httpClient, logger,
		)
	} else {
		// No mail credentials: record sends locally instead of failing
		logger.Warn("mail API credentials missing, sends will be recorded only")
		sender = &mail.Mock{}
	}

	model := app.New(cfg, paymentClient, catalogClient, sender, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
