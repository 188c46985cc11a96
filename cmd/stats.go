package cmd

import (
	"bufio"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"firestige.xyz/strix/internal/config"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Read verdict counters from a running instance",
	Long: `
Query the metrics endpoint of a running strix instance and print the strix
counters. The endpoint address is taken from the config file.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if !cfg.Metrics.Enabled {
			return fmt.Errorf("metrics are disabled in %s", configPath)
		}

		url := fmt.Sprintf("http://%s%s", cfg.Metrics.Listen, cfg.Metrics.Path)
		client := &http.Client{Timeout: 5 * time.Second}
		resp, err := client.Get(url)
		if err != nil {
			return fmt.Errorf("is strix running? %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("metrics endpoint returned %s", resp.Status)
		}

		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.HasPrefix(line, "strix_") {
				fmt.Println(line)
			}
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
