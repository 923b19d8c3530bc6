package pipeline

import "testing"

func TestFrameStride(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		want     int
	}{
		{
			name:     "zero duration",
			duration: 0,
			want:     5,
		},
		{
			name:     "just under ten seconds",
			duration: 9.9,
			want:     5,
		},
		{
			name:     "exactly ten seconds",
			duration: 10,
			want:     10,
		},
		{
			name:     "twenty second clip",
			duration: 20,
			want:     10,
		},
		{
			name:     "twenty-three seconds floors to two steps",
			duration: 23,
			want:     10,
		},
		{
			name:     "thirty-one seconds",
			duration: 31,
			want:     15,
		},
		{
			name:     "one minute",
			duration: 60,
			want:     30,
		},
		{
			name:     "long video samples sparsely",
			duration: 600,
			want:     300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FrameStride(tt.duration)
			if got != tt.want {
				t.Errorf("FrameStride(%v) = %d, want %d", tt.duration, got, tt.want)
			}
		})
	}
}

func TestDefaultFrameStrideMatchesFormulaFloor(t *testing.T) {
	if FrameStride(0) != DefaultFrameStride {
		t.Errorf("formula floor %d does not match DefaultFrameStride %d", FrameStride(0), DefaultFrameStride)
	}
}
