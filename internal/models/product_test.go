package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func mustMoney(t *testing.T, value string) Money {
	t.Helper()
	amount, err := NewMoneyFromString(value)
	if err != nil {
		t.Fatalf("parse money %s failed: %v", value, err)
	}
	return amount
}

func TestProductDiscountPercent(t *testing.T) {
	cases := []struct {
		name     string
		price    string
		original string
		want     int
	}{
		{"无原价", "2.99", "", 0},
		{"原价不高于现价", "4.49", "4.49", 0},
		{"四舍五入向下", "2.99", "4.00", 25},
		{"四舍五入进位", "1.01", "2.00", 50},
		{"三分之一折扣", "2.00", "3.00", 33},
	}
	for _, tc := range cases {
		product := Product{Price: mustMoney(t, tc.price)}
		if tc.original != "" {
			original := mustMoney(t, tc.original)
			product.OriginalPrice = &original
		}
		if got := product.DiscountPercent(); got != tc.want {
			t.Fatalf("%s: discount want %d got %d", tc.name, tc.want, got)
		}
	}
}

func TestProductMarshalJSONCarriesDiscount(t *testing.T) {
	original := mustMoney(t, "4.00")
	product := Product{
		Name:          "Honeycrisp Apples 1kg",
		Price:         mustMoney(t, "2.99"),
		OriginalPrice: &original,
		InStock:       true,
	}

	body, err := json.Marshal(product)
	if err != nil {
		t.Fatalf("marshal product failed: %v", err)
	}
	if !strings.Contains(string(body), `"discount_percent":25`) {
		t.Fatalf("payload should carry discount_percent, got %s", body)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("unmarshal payload failed: %v", err)
	}
	if decoded["name"] != product.Name {
		t.Fatalf("payload should keep base fields, got %v", decoded["name"])
	}
}
