package pipeline

import (
	"context"
	"log/slog"

	"scurry-locator/domain/pipeline"
)

// Service runs the video-location pipeline: download, audio extraction,
// transcription, duration probe, frame-text scan, location extraction and
// session cleanup. Stages run strictly in order; each stage's output is the
// next stage's input. Fetching, transcoding, transcription and frame
// scanning are fail-fast; the duration probe and the location extraction
// are fail-soft and degrade to defaults instead of aborting.
type Service struct {
	fetcher     pipeline.VideoFetcher
	extractor   pipeline.AudioExtractor
	transcriber pipeline.Transcriber
	prober      pipeline.DurationProber
	scanner     pipeline.FrameTextScanner
	locator     pipeline.LocationExtractor
	remover     pipeline.FileRemover
	workDir     string
	logger      *slog.Logger
}

// NewService creates a pipeline service with injected stage implementations
func NewService(
	fetcher pipeline.VideoFetcher,
	extractor pipeline.AudioExtractor,
	transcriber pipeline.Transcriber,
	prober pipeline.DurationProber,
	scanner pipeline.FrameTextScanner,
	locator pipeline.LocationExtractor,
	remover pipeline.FileRemover,
	workDir string,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		fetcher:     fetcher,
		extractor:   extractor,
		transcriber: transcriber,
		prober:      prober,
		scanner:     scanner,
		locator:     locator,
		remover:     remover,
		workDir:     workDir,
		logger:      logger,
	}
}

// Run executes the full pipeline for one video link and returns the
// identified locations. The result is never nil on success; a video that
// mentions no locations yields an empty slice. Session files are removed on
// every path, including failures where later-stage files were never created.
func (s *Service) Run(ctx context.Context, url string) ([]string, error) {
	session := pipeline.NewSession(s.workDir)
	logger := s.logger.With(slog.String("session", session.Token))

	defer func() {
		if err := session.Cleanup(s.remover); err != nil {
			logger.Warn("session cleanup incomplete", slog.String("error", err.Error()))
		}
	}()

	logger.Info("fetching video", slog.String("url", url))
	videoPath, err := s.fetcher.Fetch(ctx, url, session.VideoPath)
	if err != nil {
		return nil, err
	}

	logger.Info("extracting audio")
	if err := s.extractor.Extract(ctx, videoPath, session.AudioPath); err != nil {
		return nil, err
	}

	logger.Info("transcribing audio")
	transcript, err := s.transcriber.Transcribe(ctx, session.AudioPath)
	if err != nil {
		return nil, err
	}

	stride := pipeline.DefaultFrameStride
	if seconds, ok := s.prober.Probe(ctx, videoPath); ok {
		stride = pipeline.FrameStride(seconds)
		logger.Info("probed duration",
			slog.Float64("seconds", seconds),
			slog.Int("stride", stride),
		)
	} else {
		logger.Warn("duration unknown, using default stride", slog.Int("stride", stride))
	}

	logger.Info("scanning frames for text")
	visualText, err := s.scanner.Scan(ctx, videoPath, stride)
	if err != nil {
		return nil, err
	}

	logger.Info("extracting locations")
	locations, err := s.locator.ExtractLocations(ctx, transcript, visualText)
	if err != nil {
		// Best-effort stage: keep the pipeline's work and return no matches
		logger.Warn("location extraction failed, returning empty list",
			slog.String("error", err.Error()),
		)
		return []string{}, nil
	}
	if locations == nil {
		locations = []string{}
	}

	logger.Info("pipeline complete", slog.Int("locations", len(locations)))
	return locations, nil
}
