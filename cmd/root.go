package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tenor/config"
	"github.com/s0up4200/tenor/tenor"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  tenor.API

	appVersion   = "dev"
	appBuildTime = "unknown"

	// Command flags
	whereExpr string
	limit     int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tenor",
	Short: "Search and browse GIFs and stickers from Tenor",
	Long: `tenor is a CLI for the Tenor v2 API. It searches GIFs and stickers,
lists featured content and categories, and fetches search suggestions,
autocomplete results and trending terms.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// SetVersion sets the build information reported by the version and update commands.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = version
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	flags.String("api-key", "", "Tenor API key")
	flags.String("client-key", "", "client key sent with every request")
	flags.String("base-url", "", "Tenor API base URL")
	flags.String("country", "", "ISO 3166-1 country code, e.g. US")
	flags.String("locale", "", "locale in xx_YY form, e.g. en_US")
	flags.StringP("output", "o", "", "output format (text or json)")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
}

// initializeApp initializes the configuration and the Tenor client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	if cfg.Tenor.APIKey == "" {
		return fmt.Errorf("no API key configured: set tenor.api_key in the config file or pass --api-key")
	}

	opts := []tenor.Option{
		tenor.WithBaseURL(cfg.Tenor.BaseURL),
		tenor.WithTimeout(cfg.Tenor.Timeout),
		tenor.WithUserAgent("tenor-cli/" + appVersion),
		tenor.WithLogger(logger.With().Str("component", "tenor").Logger()),
	}
	if cfg.Tenor.ClientKey != "" {
		opts = append(opts, tenor.WithClientKey(cfg.Tenor.ClientKey))
	}

	c, err := tenor.NewClient(cfg.Tenor.APIKey, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Tenor client: %w", err)
	}
	client = c

	logger.Debug().
		Str("base_url", cfg.Tenor.BaseURL).
		Str("output", cfg.Output.Format).
		Msg("Tenor client initialized")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	fd := os.Stderr.Fd()
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// describeError renders errors returned by the Tenor API for the terminal
func describeError(err error) string {
	var apiErr *tenor.APIError
	if errors.As(err, &apiErr) {
		msg := fmt.Sprintf("Tenor API error %d", apiErr.Code)
		if status := apiErr.StatusString(); status != "" {
			msg += " " + status
		}
		msg += ": " + apiErr.Message
		if apiErr.IsUnauthorized() {
			msg += "\nCheck that tenor.api_key is a valid Tenor API key."
		}
		return msg
	}

	var httpErr *tenor.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Sprintf("Unexpected response from Tenor: %s", httpErr.Error())
	}

	return fmt.Sprintf("Error: %v", err)
}
