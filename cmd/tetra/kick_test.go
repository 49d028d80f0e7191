package main

import (
	"testing"

	"github.com/vovakirdan/tetra/internal/piece"
)

func TestParseRotation(t *testing.T) {
	tests := []struct {
		in       string
		expected int
		wantErr  bool
	}{
		{"cw", 1, false},
		{"CCW", -1, false},
		{"180", 2, false},
		{"-3", -3, false},
		{"sideways", 0, true},
	}
	for _, tt := range tests {
		got, err := parseRotation(tt.in)
		if (err != nil) != tt.wantErr || got != tt.expected {
			t.Errorf("parseRotation(%q) = %d, %v", tt.in, got, err)
		}
	}
}

func TestParseSlide(t *testing.T) {
	tests := []struct {
		in       string
		expected piece.Direction
		wantErr  bool
	}{
		{"left", piece.West, false},
		{"E", piece.East, false},
		{"down", piece.South, false},
		{"up", piece.North, true},
	}
	for _, tt := range tests {
		got, err := parseSlide(tt.in)
		if (err != nil) != tt.wantErr || got != tt.expected {
			t.Errorf("parseSlide(%q) = %v, %v", tt.in, got, err)
		}
	}
}
