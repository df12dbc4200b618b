package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/storagemon/powerstore-prtg/internal/powerstore"
	"github.com/storagemon/powerstore-prtg/internal/report"
)

// An invalid mode must fail before any connection attempt, so an unreachable
// host is fine here.
func TestProbeInvalidMode(t *testing.T) {
	_, _, err := probe(context.Background(), "unreachable.invalid", "Foo", "u", "p", false, 0)
	var invalid *report.ErrInvalidCategory
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if err.Error() != "check parameters" {
		t.Errorf("expected 'check parameters', got %q", err.Error())
	}
}

func TestProbeLowercaseModeRejected(t *testing.T) {
	_, _, err := probe(context.Background(), "unreachable.invalid", "device", "u", "p", false, 0)
	var invalid *report.ErrInvalidCategory
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestProbeMissingCredentials(t *testing.T) {
	_, _, err := probe(context.Background(), "host", "Device", "", "", false, 0)
	if !errors.Is(err, errParameters) {
		t.Fatalf("expected errParameters, got %v", err)
	}
}

// A failed login surfaces as AuthError and never reaches metric fetching.
func TestProbeAuthFailure(t *testing.T) {
	_, _, err := probe(context.Background(), "unreachable.invalid", "Device", "u", "p", false, 1)
	var authErr *powerstore.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}
