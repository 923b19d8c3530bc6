package ocr

import "strings"

// shouldSample reports whether the frame at the given zero-based index is
// evaluated for the given stride
func shouldSample(index, stride int) bool {
	return index%stride == 0
}

// joinFrameTexts drops per-frame results that are empty after trimming and
// joins the rest with single spaces, preserving frame scan order
func joinFrameTexts(texts []string) string {
	kept := make([]string, 0, len(texts))
	for _, text := range texts {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, " ")
}
