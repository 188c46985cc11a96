package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"firestige.xyz/strix/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file and print the normalized result",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("config ok: %s\n---\n%s", configPath, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
