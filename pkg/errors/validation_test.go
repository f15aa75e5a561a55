package errors

import (
	"strings"
	"testing"
)

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid relative path", "bridge_model.step", false},
		{"valid nested path", "out/exports/bridge.brep", false},
		{"empty path", "", true},
		{"null byte", "bridge\x00.step", true},
		{"control character", "bridge\n.step", true},
		{"too long", strings.Repeat("a", 501), true},
		{"exactly max length", strings.Repeat("a", 500), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("error code = %q, want %q", GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"positive", 900, false},
		{"small positive", 0.001, false},
		{"zero", 0, true},
		{"negative", -16, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimension("girder depth", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimension(%g) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil {
				if !Is(err, ErrCodeInvalidDimension) {
					t.Errorf("error code = %q, want %q", GetCode(err), ErrCodeInvalidDimension)
				}
				if !strings.Contains(err.Error(), "girder depth") {
					t.Errorf("message should name the dimension: %q", err.Error())
				}
			}
		})
	}
}

func TestValidateFormatName(t *testing.T) {
	supported := []string{"step", "brep", "obj"}

	for _, f := range supported {
		if err := ValidateFormatName(f, supported); err != nil {
			t.Errorf("ValidateFormatName(%q) = %v, want nil", f, err)
		}
	}

	err := ValidateFormatName("stl", supported)
	if err == nil {
		t.Fatal("ValidateFormatName(stl) = nil, want error")
	}
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("error code = %q, want %q", GetCode(err), ErrCodeInvalidFormat)
	}
	if !strings.Contains(err.Error(), "step, brep, obj") {
		t.Errorf("message should list supported formats: %q", err.Error())
	}
}
