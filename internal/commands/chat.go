package commands

import (
	"github.com/spf13/cobra"

	"github.com/diogo/vertexchat/internal/client"
	"github.com/diogo/vertexchat/internal/tui"
)

var relayURLFlag string

// chatCmd starts the interactive chat client
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive chat client",
	Long: `Opens the terminal chat client against a running relay server.
The transcript starts with an assistant greeting; while a message is in
flight further submissions are ignored until the reply (or the fixed
connection-error message) arrives.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if relayURLFlag != "" {
			cfg.RelayURL = relayURLFlag
		}

		sender := client.New(cfg.RelayURL)
		return tui.Run(sender, cfg.Model, cfg.Greeting)
	},
}

func init() {
	chatCmd.Flags().StringVarP(&relayURLFlag, "relay", "r", "", "Relay base URL (default from config)")
}
