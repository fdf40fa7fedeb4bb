package telemetry

import (
	"bytes"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestWriteForceGrid(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		0, 1.5, 2,
		3, 4, 0.25,
	})

	var buf bytes.Buffer
	if err := WriteForceGrid(&buf, m); err != nil {
		t.Fatalf("WriteForceGrid: %v", err)
	}

	want := "0,1.5,2\n3,4,0.25\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestReadForceGridRoundTrip(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{0.1, 0.2, 1e-9, 12345.678, 0, 7})

	var buf bytes.Buffer
	if err := WriteForceGrid(&buf, m); err != nil {
		t.Fatalf("WriteForceGrid: %v", err)
	}
	got, err := ReadForceGrid(&buf)
	if err != nil {
		t.Fatalf("ReadForceGrid: %v", err)
	}
	if !mat.Equal(m, got) {
		t.Errorf("round trip mismatch:\n%v\n%v", mat.Formatted(m), mat.Formatted(got))
	}
}

func TestReadForceGridErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not a number", "1,x\n"},
		{"ragged", "1,2\n3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadForceGrid(strings.NewReader(tt.input)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
