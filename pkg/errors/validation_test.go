package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "alice", false},
		{"valid with spaces", "Alice Smith", false},
		{"valid with comma", "Smith, Alice", false},
		{"valid unicode", "Zoë", false},
		{"empty", "", false},

		{"too long", strings.Repeat("a", 300), true},
		{"newline", "foo\nbar", true},
		{"carriage return", "foo\rbar", true},
		{"null byte", "foo\x00bar", true},
		{"tab", "foo\tbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateCount(t *testing.T) {
	if err := ValidateCount("vertices", 0); err != nil {
		t.Errorf("ValidateCount(0) = %v, want nil", err)
	}
	if err := ValidateCount("vertices", 12); err != nil {
		t.Errorf("ValidateCount(12) = %v, want nil", err)
	}
	err := ValidateCount("vertices", -1)
	if err == nil {
		t.Fatal("ValidateCount(-1) = nil, want error")
	}
	if !strings.Contains(err.Error(), "vertices") {
		t.Errorf("error %q does not name the parameter", err)
	}
}

func TestValidateProbability(t *testing.T) {
	tests := []struct {
		input   float64
		wantErr bool
	}{
		{0, false},
		{0.5, false},
		{1, false},
		{-0.01, true},
		{1.01, true},
		{math.NaN(), true},
		{math.Inf(1), true},
	}

	for _, tt := range tests {
		err := ValidateProbability("density", tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateProbability(%g) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "graphs/lattice.bgx", false},
		{"absolute", "/tmp/out.json", false},
		{"dotted", "../shared/g.bgx", false},

		{"empty", "", true},
		{"null byte", "g\x00.bgx", true},
		{"too long", strings.Repeat("a", 5000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"bgx", "g.bgx", false},
		{"upper case", "G.BGX", false},
		{"json", "out/g.json", false},

		{"no extension", "graph", true},
		{"wrong extension", "g.txt", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtension(tt.input, ".bgx", ".json")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExtension(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
