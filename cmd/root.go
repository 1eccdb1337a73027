package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/kayan-consulting/kayan/internal/app"
	"github.com/kayan-consulting/kayan/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "kayan",
	Short: "Kayan restaurant consulting landing page",
	Long: `Kayan presents its restaurant consulting services in Arabic and English,
with an AI consultant that answers visitor questions.

Without a subcommand the page opens in the terminal.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		application, err := app.NewApplication(cfg)
		if err != nil {
			return err
		}
		defer application.Stop()

		return application.Start()
	},
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.kayan/config.yaml, home overridable with KAYAN_HOME)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(configCmd)
}
