package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/vertexchat/internal/config"
)

// configCmd shows and edits the stored configuration
var configCmd = &cobra.Command{
	Use:   "config [key value]",
	Short: "Show or set configuration values",
	Long: `Without arguments, prints the effective configuration (file plus
environment overrides). With a key and value, updates the config file.

Keys: project, location, model, addr, static-dir, greeting, relay-url`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch len(args) {
		case 0:
			cfg := loadConfig()
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		case 1:
			return fmt.Errorf("missing value for key %q", args[0])
		default:
			return setConfigValue(args[0], args[1])
		}
	},
}

func setConfigValue(key, value string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if err := applyConfigKey(&cfg, key, value); err != nil {
		return err
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}
	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}

func applyConfigKey(cfg *config.Config, key, value string) error {
	switch key {
	case "project":
		cfg.Project = value
	case "location":
		cfg.Location = value
	case "model":
		cfg.Model = value
	case "addr":
		cfg.Addr = value
	case "static-dir":
		cfg.StaticDir = value
	case "greeting":
		cfg.Greeting = value
	case "relay-url":
		cfg.RelayURL = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
