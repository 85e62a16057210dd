package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pd-tools/partner-desk/pkg/server"
	"github.com/pd-tools/partner-desk/pkg/services/commissions"
	"github.com/pd-tools/partner-desk/pkg/services/config"
	"github.com/pd-tools/partner-desk/pkg/services/dashboard"
	"github.com/pd-tools/partner-desk/pkg/services/orders"
	"github.com/pd-tools/partner-desk/pkg/services/users"
	"github.com/pd-tools/partner-desk/pkg/store/memory"
	"github.com/pd-tools/partner-desk/pkg/store/seed"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Partner Desk backoffice API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the YAML config file (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store := memory.NewStore()
	seed.Populate(store, seed.Settings{
		Users:       cfg.Seed.Users,
		Orders:      cfg.Seed.Orders,
		Commissions: cfg.Seed.Commissions,
	})
	logger.Info().
		Int("users", cfg.Seed.Users).
		Int("orders", cfg.Seed.Orders).
		Int("commissions", cfg.Seed.Commissions).
		Msg("record store seeded")

	host := cfg.Server.Host
	port := cfg.Server.Port
	if envHost := os.Getenv("SERVER_HOST"); envHost != "" {
		host = envHost
	}
	if envPort := os.Getenv("SERVER_PORT"); envPort != "" {
		port = envPort
	}

	api := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Users:       users.NewService(store),
			Orders:      orders.NewService(store),
			Commissions: commissions.NewService(store),
			Dashboard:   dashboard.NewReporter(store, nil),
			Logger:      logger,
		},
	})

	return api.Start()
}
