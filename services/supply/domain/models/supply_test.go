package models

import (
	"strings"
	"testing"
)

func TestNewSupplyName(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		name, err := NewSupplyName("Surgical Gloves")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name.String() != "Surgical Gloves" {
			t.Errorf("String() = %q", name.String())
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, err := NewSupplyName(""); err == nil {
			t.Error("expected error for empty name")
		}
	})

	t.Run("max length", func(t *testing.T) {
		if _, err := NewSupplyName(strings.Repeat("a", 255)); err != nil {
			t.Errorf("255-char name should be valid: %v", err)
		}
		if _, err := NewSupplyName(strings.Repeat("a", 256)); err == nil {
			t.Error("expected error for 256-char name")
		}
	})
}

func TestNewSupply(t *testing.T) {
	name, _ := NewSupplyName("Saline Bags")

	t.Run("valid", func(t *testing.T) {
		s, err := NewSupply(name, 40, 10, "Baxter")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(s.ID, "ms_") {
			t.Errorf("ID = %q, want ms_ prefix", s.ID)
		}
		if s.CreatedAt.IsZero() {
			t.Error("CreatedAt not set")
		}
		if s.CurrentStock != 40 || s.MinimumStock != 10 {
			t.Errorf("stock = %d/%d, want 40/10", s.CurrentStock, s.MinimumStock)
		}
	})

	t.Run("negative current stock", func(t *testing.T) {
		if _, err := NewSupply(name, -1, 0, "Baxter"); err == nil {
			t.Error("expected error for negative current stock")
		}
	})

	t.Run("negative minimum stock", func(t *testing.T) {
		if _, err := NewSupply(name, 0, -1, "Baxter"); err == nil {
			t.Error("expected error for negative minimum stock")
		}
	})
}

func TestNewSupplyID_Unique(t *testing.T) {
	if NewSupplyID() == NewSupplyID() {
		t.Error("two generated supply ids collided")
	}
}

func TestLowStock(t *testing.T) {
	cases := []struct {
		name    string
		current int
		minimum int
		want    bool
	}{
		{"above threshold", 50, 10, false},
		{"at threshold", 10, 10, true},
		{"below threshold", 3, 10, true},
		{"zero stock", 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &Supply{CurrentStock: tc.current, MinimumStock: tc.minimum}
			if got := s.LowStock(); got != tc.want {
				t.Errorf("LowStock() = %v, want %v", got, tc.want)
			}
		})
	}
}
