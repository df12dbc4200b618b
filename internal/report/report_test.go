package report

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{input: "Device", want: Device},
		{input: "Capacity", want: Capacity},
		{input: "Performance", want: Performance},
		{input: "device", wantErr: true}, // matching is case-sensitive
		{input: "PERFORMANCE", wantErr: true},
		{input: "Foo", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				var invalid *ErrInvalidCategory
				if !errors.As(err, &invalid) {
					t.Fatalf("expected ErrInvalidCategory, got %T", err)
				}
				if err.Error() != "check parameters" {
					t.Errorf("expected message 'check parameters', got %q", err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCategoryString(t *testing.T) {
	for _, c := range []Category{Device, Capacity, Performance} {
		parsed, err := ParseCategory(c.String())
		if err != nil {
			t.Fatalf("String/Parse roundtrip failed for %v: %v", c, err)
		}
		if parsed != c {
			t.Errorf("expected %v, got %v", c, parsed)
		}
	}
}
