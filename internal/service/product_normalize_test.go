package service

import "testing"

func TestNormalizeProductName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "Brown Bread 400g", want: "brownbread"},
		{in: "Brown Breads", want: "brownbread"},
		{in: "Organic Bananas 1kg", want: "organicbanana"},
		{in: "Hummus", want: "hummu"},
		{in: "Sparkling Water 330 ml", want: "sparklingwater"},
		{in: "Free Range Eggs 12 pcs", want: "freerangeegg"},
		{in: "  MILK 2 ltr ", want: "milk"},
		{in: "400g", want: ""},
		{in: "", want: ""},
	}
	for _, item := range cases {
		got := NormalizeProductName(item.in)
		if got != item.want {
			t.Fatalf("normalize %q want %q got %q", item.in, item.want, got)
		}
	}
}

func TestIsDuplicateProductName(t *testing.T) {
	existing := []string{"Brown Bread 400g", "Organic Bananas 1kg", "Whole Milk 2L"}

	if !IsDuplicateProductName("Brown Breads", existing) {
		t.Fatalf("expected Brown Breads to match Brown Bread 400g")
	}
	if !IsDuplicateProductName("ORGANIC BANANA", existing) {
		t.Fatalf("expected case and plural insensitive match")
	}
	if IsDuplicateProductName("Rye Bread", existing) {
		t.Fatalf("Rye Bread should not match any existing name")
	}
	if IsDuplicateProductName("Cherry Tomatoes", nil) {
		t.Fatalf("empty existing list should never match")
	}
}
