package errors

import (
	"testing"
)

func TestValidateStepSize(t *testing.T) {
	tests := []struct {
		name    string
		step    int
		strict  bool
		wantErr bool
	}{
		{"default", 5, false, false},
		{"whole side", 100, false, false},
		{"one percent", 1, true, false},
		{"divisor strict", 25, true, false},
		{"non-divisor lenient", 7, false, false},

		{"zero", 0, false, true},
		{"negative", -5, false, true},
		{"too large", 101, false, true},
		{"non-divisor strict", 7, true, true},
		{"non-divisor strict 30", 30, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStepSize(tt.step, tt.strict)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStepSize(%d, %v) error = %v, wantErr %v", tt.step, tt.strict, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidStepSize) {
				t.Errorf("ValidateStepSize(%d) code = %v, want %v", tt.step, GetCode(err), ErrCodeInvalidStepSize)
			}
		})
	}
}

func TestValidateMean(t *testing.T) {
	tests := []struct {
		name    string
		mean    int
		wantErr bool
	}{
		{"zero", 0, false},
		{"default", 5, false},
		{"large", 1000, false},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMean(tt.mean)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMean(%d) error = %v, wantErr %v", tt.mean, err, tt.wantErr)
			}
		})
	}
}
