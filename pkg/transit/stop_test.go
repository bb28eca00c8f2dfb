package transit

import (
	"slices"
	"testing"
)

func TestMergeWith(t *testing.T) {
	tests := []struct {
		name       string
		a, b       Stop
		wantID     string
		wantName   string
		wantRoutes []string
	}{
		{
			name:       "distinct names joined",
			a:          Stop{ID: "a1", Name: "Central", Routes: []string{"U2"}},
			b:          Stop{ID: "b2", Name: "Central North", Routes: []string{"U1"}},
			wantID:     "a1+b2",
			wantName:   "Central / Central North",
			wantRoutes: []string{"U1", "U2"},
		},
		{
			name:     "equal names kept once",
			a:        Stop{ID: "a", Name: "Central"},
			b:        Stop{ID: "b", Name: "Central"},
			wantID:   "a+b",
			wantName: "Central",
		},
		{
			name:     "empty receiver name",
			a:        Stop{ID: "a"},
			b:        Stop{ID: "b", Name: "Central"},
			wantID:   "a+b",
			wantName: "Central",
		},
		{
			name:       "duplicate routes deduplicated",
			a:          Stop{ID: "a", Routes: []string{"U2", "U1"}},
			b:          Stop{ID: "b", Routes: []string{"U1", "S4"}},
			wantID:     "a+b",
			wantRoutes: []string{"S4", "U1", "U2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.MergeWith(tt.b)
			if got.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", got.ID, tt.wantID)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if !slices.Equal(got.Routes, tt.wantRoutes) {
				t.Errorf("Routes = %v, want %v", got.Routes, tt.wantRoutes)
			}
			if got.Rank != 0 {
				t.Errorf("Rank = %v, want 0", got.Rank)
			}
		})
	}
}

func TestMergeWithMidpoint(t *testing.T) {
	a := Stop{ID: "a", Lat: 48.0, Lon: 11.0}
	b := Stop{ID: "b", Lat: 50.0, Lon: 13.0}

	got := a.MergeWith(b)
	if got.Lat != 49.0 || got.Lon != 12.0 {
		t.Errorf("midpoint = (%v, %v), want (49, 12)", got.Lat, got.Lon)
	}
}

func TestMergeWithPure(t *testing.T) {
	a := Stop{ID: "a", Routes: []string{"U1"}}
	b := Stop{ID: "b", Routes: []string{"U2"}}

	_ = a.MergeWith(b)

	if a.ID != "a" || b.ID != "b" {
		t.Error("MergeWith mutated an input stop")
	}
	if !slices.Equal(a.Routes, []string{"U1"}) || !slices.Equal(b.Routes, []string{"U2"}) {
		t.Error("MergeWith mutated input routes")
	}
}
