package whisper

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scurry-locator/domain/pipeline"
)

// fakeRunner implements execrunner.CommandRunner for testing
type fakeRunner struct {
	lastName  string
	lastArgs  []string
	output    []byte
	outputErr error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return nil, nil
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.lastName = name
	f.lastArgs = args
	return f.output, f.outputErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeModelFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ggml-base.bin")
	if err := os.WriteFile(path, []byte("model"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewTranscriberRequiresModel(t *testing.T) {
	if _, err := NewTranscriber(""); err == nil {
		t.Fatal("expected error for empty model path")
	}
	if _, err := NewTranscriber("/nonexistent/model.bin"); err == nil {
		t.Fatal("expected error for missing model file")
	}
}

func TestTranscribeReturnsTrimmedText(t *testing.T) {
	runner := &fakeRunner{output: []byte(" Welcome to Kyoto, the old capital. \n")}
	tr, err := NewTranscriber(writeModelFile(t),
		WithTranscriberCommandRunner(runner),
		WithTranscriberLogger(discardLogger()),
	)
	if err != nil {
		t.Fatalf("NewTranscriber returned error: %v", err)
	}

	text, err := tr.Transcribe(context.Background(), "audio.wav")
	if err != nil {
		t.Fatalf("Transcribe returned error: %v", err)
	}
	if text != "Welcome to Kyoto, the old capital." {
		t.Errorf("unexpected transcript: %q", text)
	}
}

func TestTranscribeEmptyAudioIsValid(t *testing.T) {
	runner := &fakeRunner{output: []byte("\n")}
	tr, err := NewTranscriber(writeModelFile(t),
		WithTranscriberCommandRunner(runner),
		WithTranscriberLogger(discardLogger()),
	)
	if err != nil {
		t.Fatalf("NewTranscriber returned error: %v", err)
	}

	text, err := tr.Transcribe(context.Background(), "silent.wav")
	if err != nil {
		t.Fatalf("Transcribe returned error: %v", err)
	}
	if text != "" {
		t.Errorf("expected empty transcript for silent audio, got %q", text)
	}
}

func TestTranscribeWrapsFailureAsTranscriptionError(t *testing.T) {
	cause := errors.New("exit status 1")
	runner := &fakeRunner{outputErr: cause}
	tr, err := NewTranscriber(writeModelFile(t),
		WithTranscriberCommandRunner(runner),
		WithTranscriberLogger(discardLogger()),
	)
	if err != nil {
		t.Fatalf("NewTranscriber returned error: %v", err)
	}

	_, err = tr.Transcribe(context.Background(), "audio.wav")

	var transcriptionErr *pipeline.TranscriptionError
	if !errors.As(err, &transcriptionErr) {
		t.Fatalf("expected TranscriptionError, got %T: %v", err, err)
	}
	if !errors.Is(err, cause) {
		t.Error("expected the exec error to be wrapped")
	}
}

func TestTranscribePassesModelAndAudio(t *testing.T) {
	runner := &fakeRunner{output: []byte("hi")}
	model := writeModelFile(t)
	tr, err := NewTranscriber(model,
		WithTranscriberCommandRunner(runner),
		WithTranscriberLanguage("en"),
		WithTranscriberLogger(discardLogger()),
	)
	if err != nil {
		t.Fatalf("NewTranscriber returned error: %v", err)
	}

	tr.Transcribe(context.Background(), "clip.wav")

	joined := strings.Join(runner.lastArgs, " ")
	for _, want := range []string{"-m " + model, "-f clip.wav", "--no-timestamps", "-l en"} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %s", want, joined)
		}
	}
}
