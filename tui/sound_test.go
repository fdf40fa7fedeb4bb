package tui

import (
	"math"
	"testing"
)

func TestChimeFrequency(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{0, 440},
		{12, 440},
		{7, 440 * math.Pow(2, 7.0/12)},
	}
	for _, tt := range tests {
		if got := ChimeFrequency(tt.n); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ChimeFrequency(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestChimeStreamerEnds(t *testing.T) {
	s, err := ChimeStreamer(440, 0.5)
	if err != nil {
		t.Fatalf("ChimeStreamer: %v", err)
	}

	want := sampleRate.N(chimeDuration)
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if math.Abs(buf[j][0]) > 1 || math.Abs(buf[j][1]) > 1 {
				t.Fatalf("sample %d out of range: %v", total+j, buf[j])
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestChimeSilentWithoutDevice(t *testing.T) {
	c := NewChime(0.5)
	// Not initialized: Play and Close must be no-ops.
	c.Play()
	c.Close()
}
