package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"scurry-locator/infrastructure/config"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// Prompter interface for interactive prompts (allows mocking in tests)
type Prompter interface {
	Input(message string, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyPrompter implements Prompter using the survey library
type SurveyPrompter struct{}

func (p *SurveyPrompter) Input(message string, defaultValue string) (string, error) {
	result := ""
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	result := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// DefaultPrompter is the prompter used in production
var DefaultPrompter Prompter = &SurveyPrompter{}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create configuration file interactively",
	Long: `Prompts for configuration values and creates config.yaml.

This command guides you through setting up the work directory, external
tool paths and the completion service settings.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	return RunSetupWithPrompter(DefaultPrompter, "config/config.yaml")
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter Prompter, configPath string) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm("config.yaml already exists. Overwrite?", false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Println("Setup cancelled.")
			return nil
		}
	}

	defaults := config.Default()
	cfg := &config.Config{}
	var err error

	if cfg.Server.Bind, err = prompter.Input("Listen address:", defaults.Server.Bind); err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if cfg.Paths.WorkDirectory, err = prompter.Input("Work directory for temporary media files:", defaults.Paths.WorkDirectory); err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if cfg.Tools.YtdlpPath, err = prompter.Input("yt-dlp path:", defaults.Tools.YtdlpPath); err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if cfg.Tools.FFmpegPath, err = prompter.Input("ffmpeg path:", defaults.Tools.FFmpegPath); err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if cfg.Tools.FFprobePath, err = prompter.Input("ffprobe path:", defaults.Tools.FFprobePath); err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if cfg.Tools.TesseractPath, err = prompter.Input("tesseract path:", defaults.Tools.TesseractPath); err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if cfg.Tools.WhisperPath, err = prompter.Input("whisper binary path:", defaults.Tools.WhisperPath); err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if cfg.Tools.WhisperModel, err = prompter.Input("whisper model path:", defaults.Tools.WhisperModel); err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if cfg.OpenAI.Model, err = prompter.Input("Completion model:", "gpt-4o"); err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	maxTokens, err := prompter.Input("Completion max tokens:", "100")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if cfg.OpenAI.MaxTokens, err = strconv.Atoi(maxTokens); err != nil {
		return fmt.Errorf("max tokens must be a number: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := config.Save(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("Configuration written to %s\n", configPath)
	fmt.Printf("Remember to export %s before running serve or extract.\n", config.APIKeyEnvVar)
	return nil
}
