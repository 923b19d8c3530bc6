package pipeline

// FileChecker abstracts file existence checks so adapters can validate
// their configuration without touching the real filesystem in tests.
type FileChecker interface {
	Exists(path string) bool
}
