// Package cmd contains all CLI commands for bookctl
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	contentDir string
	verbose    bool
	noColor    bool
	logger     *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bookctl",
	Short: "Content tooling for the book's Markdown tree",
	Long: `bookctl inspects and validates a book's content directory: Hugo-style
Markdown documents with YAML front-matter, fenced code blocks and
quizdown quiz shortcodes.

Example usage:
  bookctl lint                 # Check front-matter, code blocks and quizzes
  bookctl lint --strict        # Treat warnings as errors
  bookctl nav                  # Print the ordered navigation tree
  bookctl stats                # Page, quiz and code block counts`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .bookctl.yaml)")
	rootCmd.PersistentFlags().StringVarP(&contentDir, "content", "c", "", "content directory (default: content)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Bind flags to viper
	_ = viper.BindPFlag("content", rootCmd.PersistentFlags().Lookup("content"))
	_ = viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	// Setup logger
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".bookctl")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/bookctl")
	}

	viper.SetEnvPrefix("BOOKCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; flags and defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return fmt.Errorf("loading config: %w", err)
		}
	} else {
		logger.Debug("config file loaded", "file", viper.ConfigFileUsed())
	}

	if contentDir == "" {
		contentDir = viper.GetString("content")
	}
	if contentDir == "" {
		contentDir = "content"
	}

	if noColor || viper.GetBool("no_color") {
		color.NoColor = true
	}

	return nil
}
