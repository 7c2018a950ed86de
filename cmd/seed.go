package cmd

import (
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriInspect/internal/config"
	"github.com/Rorical/RoriInspect/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Manage the seed world",
	Long:  `Manage the entities spawned when the inspector starts.`,
}

var listSeedCmd = &cobra.Command{
	Use:   "list",
	Short: "List seed entities",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		f, err := seed.Load(cfg.SeedFile)
		if err != nil {
			log.Fatalf("Failed to load seed file: %v", err)
		}

		fmt.Printf("Config file: %s\n", cfg.Path())
		fmt.Printf("Seed file: %s\n\n", cfg.SeedFile)
		for _, e := range f.Entities {
			fmt.Printf("  %-10s %s\n", e.Category, e.Name)
		}
	},
}

var addSeedCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add an entity to the seed world",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		f, err := seed.Load(cfg.SeedFile)
		if err != nil {
			log.Fatalf("Failed to load seed file: %v", err)
		}

		var name string
		if len(args) > 0 {
			name = args[0]
		} else {
			prompt := promptui.Prompt{
				Label: "Name",
			}
			name, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		categoryPrompt := promptui.Select{
			Label: "Category",
			Items: []string{"character", "item"},
		}
		_, category, err := categoryPrompt.Run()
		if err != nil {
			log.Fatalf("Selection failed: %v", err)
		}

		f.Entities = append(f.Entities, seed.Entity{Name: name, Category: category})
		if err := seed.Save(cfg.SeedFile, f); err != nil {
			log.Fatalf("Failed to save seed file: %v", err)
		}

		fmt.Printf("Added %s '%s' to %s\n", category, name, cfg.SeedFile)
	},
}

func init() {
	seedCmd.AddCommand(listSeedCmd)
	seedCmd.AddCommand(addSeedCmd)
}
