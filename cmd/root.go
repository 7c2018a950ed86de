package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriInspect/internal/app"
	"github.com/Rorical/RoriInspect/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "inspector",
	Short: "Debug inspector for a live simulation",
	Long: `Inspector shows the characters and items of a running simulated world
and lets you create new ones from small forms. Click an input to type into it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
	SilenceUsage: true,
}

// run starts the inspector and always stops it before returning
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		return fmt.Errorf("application error: %w", err)
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(seedCmd)
}
