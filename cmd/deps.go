package cmd

import (
	"fmt"
	"log/slog"

	apppipeline "scurry-locator/application/pipeline"
	"scurry-locator/infrastructure/config"
	"scurry-locator/infrastructure/ffmpeg"
	"scurry-locator/infrastructure/filesystem"
	"scurry-locator/infrastructure/ocr"
	"scurry-locator/infrastructure/openai"
	"scurry-locator/infrastructure/whisper"
	"scurry-locator/infrastructure/ytdlp"
)

// buildPipeline wires the production adapters into a pipeline service. The
// transcription model and completion client are constructed once here and
// shared by all requests for the lifetime of the process.
func buildPipeline(cfg *config.Config, logger *slog.Logger) (*apppipeline.Service, error) {
	apiKey, err := config.ReadAPIKey()
	if err != nil {
		return nil, fmt.Errorf("completion service misconfigured: %w", err)
	}

	client, err := openai.NewClient(openai.Config{
		APIKey:         apiKey,
		BaseURL:        cfg.OpenAI.BaseURL,
		Model:          cfg.OpenAI.Model,
		MaxTokens:      cfg.OpenAI.MaxTokens,
		TimeoutSeconds: cfg.OpenAI.TimeoutSeconds,
	})
	if err != nil {
		return nil, err
	}

	transcriber, err := whisper.NewTranscriber(cfg.Tools.WhisperModel,
		whisper.WithTranscriberBinaryPath(cfg.Tools.WhisperPath),
		whisper.WithTranscriberLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	fetcher := ytdlp.NewFetcher(
		ytdlp.WithFetcherBinaryPath(cfg.Tools.YtdlpPath),
		ytdlp.WithFetcherLogger(logger),
	)
	extractor := ffmpeg.NewExtractor(
		ffmpeg.WithExtractorFFmpegPath(cfg.Tools.FFmpegPath),
		ffmpeg.WithExtractorLogger(logger),
	)
	prober := ffmpeg.NewProber(
		ffmpeg.WithProberFFprobePath(cfg.Tools.FFprobePath),
		ffmpeg.WithProberLogger(logger),
	)
	scanner := ocr.NewScanner(
		ocr.WithScannerRecognizer(ocr.NewTesseractRecognizer(
			ocr.WithTesseractPath(cfg.Tools.TesseractPath),
		)),
		ocr.WithScannerLogger(logger),
	)
	locator := openai.NewLocator(client)

	return apppipeline.NewService(
		fetcher,
		extractor,
		transcriber,
		prober,
		scanner,
		locator,
		filesystem.NewRemover(),
		cfg.Paths.WorkDirectory,
		logger,
	), nil
}
