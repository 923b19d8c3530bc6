package pipeline

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

// recordingRemover implements FileRemover for testing
type recordingRemover struct {
	removed []string
	errs    map[string]error
}

func (r *recordingRemover) Remove(path string) error {
	r.removed = append(r.removed, path)
	if err, ok := r.errs[path]; ok {
		return err
	}
	return nil
}

func TestNewSessionPaths(t *testing.T) {
	s := NewSession("/tmp/work")

	if s.Token == "" {
		t.Fatal("expected a non-empty session token")
	}
	if s.VideoPath != filepath.Join("/tmp/work", s.Token+".mp4") {
		t.Errorf("unexpected video path: %s", s.VideoPath)
	}
	if s.AudioPath != filepath.Join("/tmp/work", s.Token+".wav") {
		t.Errorf("unexpected audio path: %s", s.AudioPath)
	}
}

func TestNewSessionTokensAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := NewSession("/tmp/work")
		if seen[s.Token] {
			t.Fatalf("duplicate session token: %s", s.Token)
		}
		seen[s.Token] = true
	}
}

func TestSessionCleanupRemovesBothFiles(t *testing.T) {
	s := NewSession(t.TempDir())
	remover := &recordingRemover{}

	if err := s.Cleanup(remover); err != nil {
		t.Fatalf("Cleanup returned error: %v", err)
	}

	if len(remover.removed) != 2 {
		t.Fatalf("expected 2 removals, got %d", len(remover.removed))
	}
	if remover.removed[0] != s.VideoPath || remover.removed[1] != s.AudioPath {
		t.Errorf("unexpected removal order: %v", remover.removed)
	}
}

func TestSessionCleanupAttemptsAllPathsOnError(t *testing.T) {
	s := NewSession(t.TempDir())
	wantErr := errors.New("permission denied")
	remover := &recordingRemover{errs: map[string]error{s.VideoPath: wantErr}}

	err := s.Cleanup(remover)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped remover error, got %v", err)
	}
	// The audio file must still be attempted after the video removal fails
	if len(remover.removed) != 2 {
		t.Errorf("expected both paths attempted, got %v", remover.removed)
	}
}

func TestSessionFilenamesCarryToken(t *testing.T) {
	s := NewSession("work")
	if !strings.Contains(filepath.Base(s.VideoPath), s.Token) {
		t.Errorf("video filename %s does not contain token", s.VideoPath)
	}
	if !strings.Contains(filepath.Base(s.AudioPath), s.Token) {
		t.Errorf("audio filename %s does not contain token", s.AudioPath)
	}
}
