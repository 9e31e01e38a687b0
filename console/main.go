package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/khatasathi/inventory-admin/internal/client"
	"github.com/khatasathi/inventory-admin/internal/config"
	"github.com/khatasathi/inventory-admin/internal/tui"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	apiURL   string
	username string
	token    string
	cfg      *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "khatasathi",
	Short: "Terminal dashboard for the KhataSathi inventory API",
	Long: `khatasathi is a terminal client for the KhataSathi inventory admin.
It browses and edits the product catalog and shows the dashboard KPIs.`,
	PersistentPreRunE: loadConfig,
	RunE:              runConsole,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "env file (default .env)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (overrides API_URL)")
	rootCmd.Flags().StringVarP(&username, "username", "u", "", "username to prefill on the login screen")
	rootCmd.Flags().StringVar(&token, "token", "", "bearer token, skips the login screen")

	rootCmd.AddCommand(healthCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if apiURL != "" {
		loaded.Console.APIURL = apiURL
	}
	cfg = loaded
	return nil
}

func newClient() *client.Client {
	return client.New(cfg.Console.APIURL, client.WithTimeout(cfg.Console.Timeout), client.WithToken(token))
}

func runConsole(cmd *cobra.Command, _ []string) error {
	user := username
	if user == "" {
		user = cfg.Admin.Username
	}
	return tui.Run(cmd.Context(), tui.Config{
		API:       newClient(),
		Timeout:   cfg.Console.Timeout,
		Username:  user,
		SkipLogin: token != "",
	})
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API is reachable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := newClient().Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(status)
		},
	}
}
