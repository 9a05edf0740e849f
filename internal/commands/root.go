// Package commands provides CLI commands for vertexchat.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/diogo/vertexchat/internal/config"
	"github.com/diogo/vertexchat/internal/provider"
	"github.com/diogo/vertexchat/internal/relay"
)

var (
	// Global flags
	modelFlag   string
	outputFlag  string
	fileFlag    string
	verboseFlag bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vertexchat [prompt]",
	Short: "Chat with a hosted Gemini model",
	Long: `vertexchat relays chat messages to a hosted Gemini model, either
through Vertex AI (project + location scope) or the Gemini API
(API key).

Examples:
  vertexchat serve                    Run the chat relay server
  vertexchat chat                     Start the interactive chat client
  vertexchat "What is Go?"            Send a single query
  vertexchat -f prompt.md             Read prompt from file
  cat prompt.md | vertexchat          Read prompt from stdin
  vertexchat "Hello" -o response.md   Save response to file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("vertexchat %s (built %s)\n", Version, BuildTime)
			return nil
		}

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data))
		}

		text, piped, err := pipedInput(os.Stdin)
		if err != nil {
			return err
		}
		if piped {
			return runQuery(text)
		}

		if len(args) > 0 {
			return runQuery(args[0])
		}

		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model to use (e.g., gemini-2.0-flash)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "V", false, "Enable detailed logging")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save response to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read prompt from file")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configCmd)
}

// pipedInput reads all of f when it is a pipe or redirect rather than
// a terminal. When f is a terminal or cannot be inspected it reports
// piped as false so the caller falls through to the other input paths.
func pipedInput(f *os.File) (text string, piped bool, err error) {
	stat, err := f.Stat()
	if err != nil || (stat.Mode()&os.ModeCharDevice) != 0 {
		return "", false, nil
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", false, fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), true, nil
}

// loadConfig loads the config and applies global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	if modelFlag != "" {
		cfg.Model = modelFlag
	}
	if verboseFlag {
		cfg.Verbose = true
	}
	return cfg
}

// newLogger builds the process logger from config.
func newLogger(cfg config.Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

// runQuery answers a one-shot prompt in-process, without a relay server.
func runQuery(prompt string) error {
	cfg := loadConfig()
	ctx := context.Background()

	gen, err := provider.NewGemini(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	defer gen.Close()

	svc := relay.NewService(gen, newLogger(cfg))
	reply := svc.Answer(ctx, prompt)
	text := reply.Flatten()

	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Response saved to %s\n", outputFlag)
		return nil
	}

	fmt.Println(text)
	return nil
}
