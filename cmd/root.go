package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"scurry-locator/infrastructure/config"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "scurry-locator",
	Short: "Extract travel locations from short-form videos",
	Long: `scurry-locator turns a short-form video link into a list of real-world
travel locations. It downloads the video, transcribes the audio, reads
on-screen text from sampled frames and asks a language model to identify
the places mentioned across both signals.

Example:
  scurry-locator serve
  scurry-locator extract --url "https://www.tiktok.com/@guide/video/123"`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = "config/config.yaml"
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// Config file is optional; commands fall back to defaults
		cfg = config.Default()
	}
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}

// NewLogger creates the process logger
func NewLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	)
}
