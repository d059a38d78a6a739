package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_NonNil(t *testing.T) {
	for name, err := range map[string]error{
		"ErrCorruptStore":       ErrCorruptStore,
		"ErrStoreSave":          ErrStoreSave,
		"ErrCatalogUnavailable": ErrCatalogUnavailable,
		"ErrDuplicateTag":       ErrDuplicateTag,
		"ErrInvalidReportName":  ErrInvalidReportName,
	} {
		if err == nil {
			t.Fatalf("%s must not be nil", name)
		}
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("load tags: %w", ErrCorruptStore)
	if !errors.Is(wrapped, ErrCorruptStore) {
		t.Fatal("errors.Is must match wrapped ErrCorruptStore")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrStoreSave, errors.New("disk full"))
	if !errors.Is(wrapped2, ErrStoreSave) {
		t.Fatal("errors.Is must match double-wrapped ErrStoreSave")
	}
}
