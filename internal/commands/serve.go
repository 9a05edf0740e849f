package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/vertexchat/internal/provider"
	"github.com/diogo/vertexchat/internal/relay"
	"github.com/diogo/vertexchat/internal/server"
)

var (
	addrFlag      string
	staticDirFlag string
)

// serveCmd runs the chat relay server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the chat relay server",
	Long: `Starts the HTTP relay server exposing POST /api/chat. Provider
failures are returned as displayable reply text; the server itself only
rejects requests whose body cannot be parsed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if addrFlag != "" {
			cfg.Addr = addrFlag
		}
		if staticDirFlag != "" {
			cfg.StaticDir = staticDirFlag
		}

		log := newLogger(cfg)
		ctx := context.Background()

		gen, err := provider.NewGemini(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to create provider: %w", err)
		}
		defer gen.Close()

		svc := relay.NewService(gen, log)
		srv := server.New(cfg, svc, log)
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&addrFlag, "addr", "a", "", "Listen address (e.g., :8080)")
	serveCmd.Flags().StringVar(&staticDirFlag, "static-dir", "", "Directory with a prebuilt UI bundle to serve at /")
}
