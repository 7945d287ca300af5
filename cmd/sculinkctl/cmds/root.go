package cmds

import (
	"fmt"
	"io"
	"os"
	"sculink/internal/backends"
	"sculink/internal/capi"
	"sculink/internal/config"
	"sculink/internal/httpclient"
	"sculink/internal/ports"
	"sculink/internal/types"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile      string
	outputFormat string
	verbose      bool

	// Shared state set during PersistentPreRun
	store   *config.Store
	clients *httpclient.Factory
	source  ports.SectionStore
	// sourceOverride is set by tests.
	sourceOverride ports.SectionStore
)

var rootCmd = &cobra.Command{
	Use:   "sculinkctl",
	Short: "Inspect sculink device configuration and talk to SCUs",
	Long: `sculinkctl reads the same configuration the shared library uses.
It lists the configured devices, manages device sections kept in a remote
configuration backend (CONFIG_BACKEND=redis|ddb), queries an SCU directly and
runs a local SCU simulator.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile := os.Getenv("ENV_FILE")
		if envFile == "" {
			envFile = ".env"
		}
		if err := godotenv.Load(envFile); err != nil {
			log.Debug("The .env file not found.")
		}
		if verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}

		if sourceOverride != nil {
			source = sourceOverride
		} else {
			var err error
			source, err = backends.SourceFromEnv()
			if err != nil {
				return fmt.Errorf("failed to open configuration backend: %w", err)
			}
		}

		path := cfgFile
		if path == "" {
			path = os.Getenv(capi.ConfigFileEnvKey)
		}
		if path == "" {
			path = types.DefaultConfigFile
		}
		store = config.NewStore(source)
		store.Load(path)
		clients = httpclient.NewFactory(store)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// RootCmd returns the root cobra.Command for testing purposes.
func RootCmd() *cobra.Command {
	return rootCmd
}

// SetSource makes every command use s instead of the backend from the
// environment. nil restores the default.
func SetSource(s ports.SectionStore) {
	sourceOverride = s
}

// render writes v in the selected output format.
func render(w io.Writer, v any) error {
	var (
		b   []byte
		err error
	)
	switch outputFormat {
	case "yaml":
		b, err = yaml.Marshal(v)
	case "json", "":
		b, err = json.MarshalIndent(v, "", "  ")
		b = append(b, '\n')
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file (default $SCULINK_CONFIG_FILE or asigntseonline.conf)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "json", "output format: json, yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
}
