package service

import (
	"testing"

	"github.com/freshcart/freshcart/internal/models"

	"github.com/shopspring/decimal"
)

func moneyFromString(t *testing.T, raw string) models.Money {
	t.Helper()
	m, err := models.NewMoneyFromString(raw)
	if err != nil {
		t.Fatalf("parse money %q failed: %v", raw, err)
	}
	return m
}

func TestComputeCartTotals(t *testing.T) {
	items := []CartItemDetail{
		{ProductID: 1, Quantity: 2, UnitPrice: moneyFromString(t, "10.00")},
		{ProductID: 2, Quantity: 1, UnitPrice: moneyFromString(t, "5.00")},
	}

	totals := ComputeCartTotals(items)
	if got := totals.Subtotal.String(); got != "25.00" {
		t.Fatalf("subtotal want 25.00 got %s", got)
	}
	if got := totals.Tax.String(); got != "0.50" {
		t.Fatalf("tax want 0.50 got %s", got)
	}
	if got := totals.Total.String(); got != "25.50" {
		t.Fatalf("total want 25.50 got %s", got)
	}
}

func TestComputeCartTotalsRounding(t *testing.T) {
	items := []CartItemDetail{
		{ProductID: 1, Quantity: 3, UnitPrice: moneyFromString(t, "19.99")},
	}

	totals := ComputeCartTotals(items)
	if got := totals.Subtotal.String(); got != "59.97" {
		t.Fatalf("subtotal want 59.97 got %s", got)
	}
	// 59.97 * 0.02 = 1.1994，入 Money 边界时取 2 位小数
	if got := totals.Tax.String(); got != "1.20" {
		t.Fatalf("tax want 1.20 got %s", got)
	}
	if got := totals.Total.String(); got != "61.17" {
		t.Fatalf("total want 61.17 got %s", got)
	}
}

func TestComputeCartTotalsEmpty(t *testing.T) {
	totals := ComputeCartTotals(nil)
	if !totals.Subtotal.Decimal.Equal(decimal.Zero) {
		t.Fatalf("empty cart subtotal want 0 got %s", totals.Subtotal.String())
	}
	if !totals.Tax.Decimal.Equal(decimal.Zero) {
		t.Fatalf("empty cart tax want 0 got %s", totals.Tax.String())
	}
	if !totals.Total.Decimal.Equal(decimal.Zero) {
		t.Fatalf("empty cart total want 0 got %s", totals.Total.String())
	}
}
