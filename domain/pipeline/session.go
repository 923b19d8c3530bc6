package pipeline

import (
	"path/filepath"

	"github.com/google/uuid"
)

// FileRemover abstracts file deletion so cleanup can be tested without
// touching the real filesystem
type FileRemover interface {
	// Remove deletes the file at path; a file that does not exist must not
	// be reported as an error
	Remove(path string) error
}

// Session is one request's isolated working set of temporary media files.
// Its token guarantees unique filenames, so concurrent sessions never share
// a video or audio file.
type Session struct {
	Token     string
	VideoPath string
	AudioPath string
}

// NewSession creates a session with a freshly generated token and derives
// the video/audio file paths under workDir
func NewSession(workDir string) *Session {
	token := uuid.NewString()
	return &Session{
		Token:     token,
		VideoPath: filepath.Join(workDir, token+".mp4"),
		AudioPath: filepath.Join(workDir, token+".wav"),
	}
}

// Cleanup removes the session's media files. It runs on both success and
// failure paths; files that were never created are skipped silently by the
// remover. The first removal error is returned after all paths are attempted.
func (s *Session) Cleanup(remover FileRemover) error {
	var firstErr error
	for _, path := range []string{s.VideoPath, s.AudioPath} {
		if err := remover.Remove(path); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
