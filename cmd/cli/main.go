package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pd-tools/partner-desk/pkg/adapters"
	"github.com/pd-tools/partner-desk/pkg/services/config"
	"github.com/pd-tools/partner-desk/pkg/services/dashboard"
	"github.com/pd-tools/partner-desk/pkg/store/memory"
	"github.com/pd-tools/partner-desk/pkg/store/seed"
)

// The CLI renders the same dashboard report the web API serves, from a
// freshly seeded store, which makes it handy for eyeballing seed data and
// report changes without starting the server.
func main() {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:   "report",
		Short: "Print the dashboard report for a seeded record store",
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			report := dashboard.NewReporter(store, nil).GetReport(cmd.Context())

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(adapters.MapReportDomainToApi(report))
		},
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the YAML config file (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
