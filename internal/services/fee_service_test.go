package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"taskbazaar/internal/models"
)

func TestCalculateFees(t *testing.T) {
	svc := &FeeService{RateBasisPoints: 500}

	first, err := svc.CalculateFees(decimal.NewFromInt(1000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.PlatformFee.String() != "50" {
		t.Errorf("expected fee 50, got %s", first.PlatformFee)
	}
	if first.NetAmount.String() != "950" {
		t.Errorf("expected net 950, got %s", first.NetAmount)
	}
	if first.Currency != "INR" {
		t.Errorf("expected INR, got %s", first.Currency)
	}
	if !first.GrossAmount.Sub(first.PlatformFee).Equal(first.NetAmount) {
		t.Error("net must equal gross minus fee")
	}

	second, err := svc.CalculateFees(decimal.NewFromInt(1000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.PlatformFee.Equal(second.PlatformFee) || !first.NetAmount.Equal(second.NetAmount) {
		t.Error("same input must produce identical output")
	}
}

func TestCalculateFeesRoundsHalfUpToPaisa(t *testing.T) {
	svc := &FeeService{RateBasisPoints: 500}

	// 5% of 100.10 = 5.005, rounds up to 5.01
	amount, _ := decimal.NewFromString("100.10")
	fb, err := svc.CalculateFees(amount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.PlatformFee.String() != "5.01" {
		t.Errorf("expected fee 5.01, got %s", fb.PlatformFee)
	}
	if fb.NetAmount.String() != "95.09" {
		t.Errorf("expected net 95.09, got %s", fb.NetAmount)
	}
}

func TestCalculateFeesRejectsNonPositive(t *testing.T) {
	svc := &FeeService{RateBasisPoints: 500}

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := svc.CalculateFees(amount)
		if err == nil {
			t.Fatalf("expected error for %s", amount)
		}
		if _, ok := err.(*models.ValidationError); !ok {
			t.Fatalf("expected ValidationError, got %T", err)
		}
	}
}

func TestParseAmount(t *testing.T) {
	if _, err := ParseAmount("abc"); err == nil {
		t.Fatal("expected error for non-numeric amount")
	}
	if _, err := ParseAmount("-1"); err == nil {
		t.Fatal("expected error for negative amount")
	}
	d, err := ParseAmount("499.99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "499.99" {
		t.Errorf("expected 499.99, got %s", d)
	}
}
