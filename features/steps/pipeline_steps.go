//go:build integration

package steps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	apppipeline "scurry-locator/application/pipeline"
	"scurry-locator/domain/pipeline"
	"scurry-locator/infrastructure/filesystem"

	"github.com/cucumber/godog"
)

// mockFetcher writes the destination file so cleanup is observable
type mockFetcher struct {
	shouldFail bool
}

func (m *mockFetcher) Fetch(ctx context.Context, url string, destPath string) (string, error) {
	if m.shouldFail {
		return "", &pipeline.FetchError{URL: url, Err: errors.New("yt-dlp exited with status 1")}
	}
	if err := os.WriteFile(destPath, []byte("video"), 0644); err != nil {
		return "", err
	}
	return destPath, nil
}

type mockExtractor struct{}

func (m *mockExtractor) Extract(ctx context.Context, videoPath string, audioPath string) error {
	return os.WriteFile(audioPath, []byte("audio"), 0644)
}

type mockTranscriber struct {
	transcript string
}

func (m *mockTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	return m.transcript, nil
}

type mockProber struct {
	duration float64
	known    bool
}

func (m *mockProber) Probe(ctx context.Context, videoPath string) (float64, bool) {
	return m.duration, m.known
}

type mockScanner struct {
	text       string
	usedStride int
}

func (m *mockScanner) Scan(ctx context.Context, videoPath string, stride int) (string, error) {
	m.usedStride = stride
	return m.text, nil
}

type mockLocator struct {
	locations  []string
	shouldFail bool
}

func (m *mockLocator) ExtractLocations(ctx context.Context, transcript string, visualText string) ([]string, error) {
	if m.shouldFail {
		return nil, errors.New("completion request failed")
	}
	return m.locations, nil
}

// pipelineContext holds test state for pipeline scenarios
type pipelineContext struct {
	workDir     string
	fetcher     *mockFetcher
	transcriber *mockTranscriber
	prober      *mockProber
	scanner     *mockScanner
	locator     *mockLocator
	locations   []string
	err         error
}

// SharedPipelineContext is reset before each scenario via Before hook
var SharedPipelineContext *pipelineContext

func getPipelineContext() *pipelineContext {
	return SharedPipelineContext
}

func InitializePipelineScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		dir, err := os.MkdirTemp("", "pipeline-feature-")
		if err != nil {
			return c, err
		}
		SharedPipelineContext = &pipelineContext{
			workDir:     dir,
			fetcher:     &mockFetcher{},
			transcriber: &mockTranscriber{},
			prober:      &mockProber{},
			scanner:     &mockScanner{},
			locator:     &mockLocator{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if SharedPipelineContext != nil {
			os.RemoveAll(SharedPipelineContext.workDir)
		}
		SharedPipelineContext = nil
		return c, nil
	})

	ctx.Step(`^the work directory is prepared$`, theWorkDirectoryIsPrepared)
	ctx.Step(`^the video duration is ([\d.]+) seconds$`, theVideoDurationIs)
	ctx.Step(`^the video duration cannot be determined$`, theVideoDurationCannotBeDetermined)
	ctx.Step(`^the transcript is "([^"]*)"$`, theTranscriptIs)
	ctx.Step(`^the frame text is "([^"]*)"$`, theFrameTextIs)
	ctx.Step(`^the completion service returns locations "([^"]*)"$`, theCompletionServiceReturnsLocations)
	ctx.Step(`^the completion service fails$`, theCompletionServiceFails)
	ctx.Step(`^the video download fails$`, theVideoDownloadFails)
	ctx.Step(`^I extract locations for "([^"]*)"$`, iExtractLocationsFor)
	ctx.Step(`^the request succeeds$`, theRequestSucceeds)
	ctx.Step(`^the request fails$`, theRequestFails)
	ctx.Step(`^the result contains "([^"]*)"$`, theResultContains)
	ctx.Step(`^the result is empty$`, theResultIsEmpty)
	ctx.Step(`^the frame stride used is (\d+)$`, theFrameStrideUsedIs)
	ctx.Step(`^no session files remain$`, noSessionFilesRemain)
}

func theWorkDirectoryIsPrepared() error {
	p := getPipelineContext()
	if p.workDir == "" {
		return errors.New("work directory was not created")
	}
	return nil
}

func theVideoDurationIs(duration float64) error {
	p := getPipelineContext()
	p.prober.duration = duration
	p.prober.known = true
	return nil
}

func theVideoDurationCannotBeDetermined() error {
	p := getPipelineContext()
	p.prober.duration = 0
	p.prober.known = false
	return nil
}

func theTranscriptIs(transcript string) error {
	p := getPipelineContext()
	p.transcriber.transcript = transcript
	return nil
}

func theFrameTextIs(text string) error {
	p := getPipelineContext()
	p.scanner.text = text
	return nil
}

func theCompletionServiceReturnsLocations(list string) error {
	p := getPipelineContext()
	for _, loc := range strings.Split(list, ",") {
		p.locator.locations = append(p.locator.locations, strings.TrimSpace(loc))
	}
	return nil
}

func theCompletionServiceFails() error {
	p := getPipelineContext()
	p.locator.shouldFail = true
	return nil
}

func theVideoDownloadFails() error {
	p := getPipelineContext()
	p.fetcher.shouldFail = true
	return nil
}

func iExtractLocationsFor(url string) error {
	p := getPipelineContext()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := apppipeline.NewService(
		p.fetcher,
		&mockExtractor{},
		p.transcriber,
		p.prober,
		p.scanner,
		p.locator,
		filesystem.NewRemover(),
		p.workDir,
		logger,
	)
	p.locations, p.err = service.Run(context.Background(), url)
	return nil
}

func theRequestSucceeds() error {
	p := getPipelineContext()
	if p.err != nil {
		return fmt.Errorf("expected success, got error: %v", p.err)
	}
	return nil
}

func theRequestFails() error {
	p := getPipelineContext()
	if p.err == nil {
		return errors.New("expected the request to fail")
	}
	return nil
}

func theResultContains(location string) error {
	p := getPipelineContext()
	for _, loc := range p.locations {
		if loc == location {
			return nil
		}
	}
	return fmt.Errorf("expected %q in result, got %v", location, p.locations)
}

func theResultIsEmpty() error {
	p := getPipelineContext()
	if p.locations == nil {
		return errors.New("expected an empty list, got nil")
	}
	if len(p.locations) != 0 {
		return fmt.Errorf("expected empty result, got %v", p.locations)
	}
	return nil
}

func theFrameStrideUsedIs(stride int) error {
	p := getPipelineContext()
	if p.scanner.usedStride != stride {
		return fmt.Errorf("expected stride %d, got %d", stride, p.scanner.usedStride)
	}
	return nil
}

func noSessionFilesRemain() error {
	p := getPipelineContext()
	entries, err := os.ReadDir(p.workDir)
	if err != nil {
		return err
	}
	if len(entries) != 0 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		return fmt.Errorf("expected no files in work directory, found %v", names)
	}
	return nil
}
