package report

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/matzehuels/transitrank/pkg/transit"
)

func TestWriteFormat(t *testing.T) {
	g, err := transit.NewGraph(
		[]transit.Stop{
			{ID: "s0", Name: "West", Routes: []string{"U1", "S4"}},
			{ID: "s1", Name: "Central"},
		},
		[]transit.Edge{{From: 0, To: 1, Weight: 5}},
	)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, g, []float64{1.5, 0.25}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	want := strings.Join([]string{
		"sep=;",
		"0;s0;West;[U1 S4];1.5",
		"1;s1;Central;[];0.25",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("report output:\n%q\nwant:\n%q", got, want)
	}
}

func TestWriteRankRendering(t *testing.T) {
	// Ranks render as shortest plain decimals, never scientific notation.
	g, err := transit.NewGraph([]transit.Stop{{ID: "a"}}, nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		rank float64
		want string
	}{
		{1, "1"},
		{0.5, "0.5"},
		{1.0 / 3.0, "0.3333333333333333"},
		{0.0001, "0.0001"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		if err := Write(&buf, g, []float64{tt.rank}); err != nil {
			t.Fatalf("Write: %v", err)
		}
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		fields := strings.Split(lines[1], ";")
		if got := fields[len(fields)-1]; got != tt.want {
			t.Errorf("rank %v rendered %q, want %q", tt.rank, got, tt.want)
		}
	}
}

func TestWriteRankCountMismatch(t *testing.T) {
	g, err := transit.NewGraph([]transit.Stop{{ID: "a"}, {ID: "b"}}, nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := Write(&bytes.Buffer{}, g, []float64{1}); err == nil {
		t.Error("Write accepted a short rank vector")
	}
}

func TestWriteFile(t *testing.T) {
	g, err := transit.NewGraph([]transit.Stop{{ID: "a"}}, nil)
	if err != nil {
		t.Fatal(err)
	}

	path := t.TempDir() + "/ranks.csv"
	if err := WriteFile(path, g, []float64{2}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, g, []float64{2}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != buf.String() {
		t.Errorf("file content %q differs from writer output %q", data, buf.String())
	}
}
