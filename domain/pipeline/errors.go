package pipeline

import "fmt"

// The pipeline distinguishes hard failures, which abort the request, from
// soft failures, which degrade to a default value. Fetching, transcoding and
// transcription are hard; duration probing and location extraction are soft
// and never surface an error to the caller.

// FetchError indicates the video link could not be resolved or downloaded
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to download video %q: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// TranscodeError indicates audio extraction failed. The transcoder's own
// output stream is logged server-side but never included in the message.
type TranscodeError struct {
	VideoPath string
	Err       error
}

func (e *TranscodeError) Error() string {
	return fmt.Sprintf("failed to extract audio from %s: %v", e.VideoPath, e.Err)
}

func (e *TranscodeError) Unwrap() error { return e.Err }

// TranscriptionError indicates speech-to-text conversion failed
type TranscriptionError struct {
	AudioPath string
	Err       error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("failed to transcribe %s: %v", e.AudioPath, e.Err)
}

func (e *TranscriptionError) Unwrap() error { return e.Err }

// ScanError indicates frame decoding or text recognition failed
type ScanError struct {
	VideoPath string
	Err       error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("failed to scan frames of %s: %v", e.VideoPath, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }
