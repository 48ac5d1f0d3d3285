package framefit

import "testing"

func TestSize(t *testing.T) {
	tests := []struct {
		name      string
		s         Size
		valid     bool
		landscape bool
	}{
		{"landscape", Size{Width: 200, Height: 150}, true, true},
		{"portrait", Size{Width: 150, Height: 200}, true, false},
		{"square", Size{Width: 100, Height: 100}, true, true},
		{"zero width", Size{Width: 0, Height: 100}, false, false},
		{"negative height", Size{Width: 100, Height: -1}, false, true},
		{"zero value", Size{}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.IsValid(); got != tt.valid {
				t.Errorf("%v.IsValid() = %v, want %v", tt.s, got, tt.valid)
			}
			if got := tt.s.Landscape(); got != tt.landscape {
				t.Errorf("%v.Landscape() = %v, want %v", tt.s, got, tt.landscape)
			}
		})
	}
}

func TestSizeSwapped(t *testing.T) {
	s := Size{Width: 200, Height: 150}
	if got := s.Swapped(); got != (Size{Width: 150, Height: 200}) {
		t.Errorf("Swapped() = %v", got)
	}
	if got := s.Swapped().Swapped(); got != s {
		t.Errorf("double swap = %v, want %v", got, s)
	}
}

func TestSizeString(t *testing.T) {
	if got := (Size{Width: 1920, Height: 1080}).String(); got != "1920x1080" {
		t.Errorf("String() = %q, want %q", got, "1920x1080")
	}
}
