package gerberbasetypes

import (
	"strings"
	"testing"
)

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{4.0, "4"},
		{0.25, "0.25"},
		{0.01, "0.01"},
		{100.0, "100"},
		{-99999.99999, "-99999.99999"},
		{0.0, "0"},
	}
	for _, test := range tests {
		if got := FormatDecimal(test.in); got != test.expected {
			t.Errorf("FormatDecimal(%v): got %q, expected %q", test.in, got, test.expected)
		}
	}
}

func TestWriteDecimal(t *testing.T) {
	var sb strings.Builder
	if err := WriteDecimal(&sb, 1.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sb.String() != "1.5" {
		t.Errorf("got %q, expected \"1.5\"", sb.String())
	}
}

func TestErrorMessages(t *testing.T) {
	if got := (&ConversionError{Reason: "value is NaN"}).Error(); got != "conversion error: value is NaN" {
		t.Errorf("unexpected message %q", got)
	}
	if got := (&CoordinateFormatError{Reason: "invalid precision: too high"}).Error(); got != "coordinate format error: invalid precision: too high" {
		t.Errorf("unexpected message %q", got)
	}
}
