package service

import (
	"errors"
	"testing"
)

func TestNormalizePaymentStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "pending", want: "pending"},
		{in: " Paid ", want: "paid"},
		{in: "SHIPPED", want: "shipped"},
		{in: "delivered", want: "delivered"},
		{in: "canceled", want: "canceled"},
		{in: "refunded", want: ""},
		{in: "", want: ""},
	}
	for _, item := range cases {
		got := NormalizePaymentStatus(item.in)
		if got != item.want {
			t.Fatalf("normalize %q want %q got %q", item.in, item.want, got)
		}
	}
}

func TestValidatePaymentStatusTransition(t *testing.T) {
	if err := ValidatePaymentStatusTransition("pending", "paid"); err != nil {
		t.Fatalf("pending->paid should be allowed: %v", err)
	}
	if err := ValidatePaymentStatusTransition("shipped", "canceled"); err != nil {
		t.Fatalf("shipped->canceled should be allowed: %v", err)
	}

	err := ValidatePaymentStatusTransition("pending", "refunded")
	if !errors.Is(err, ErrOrderStatusUnknown) {
		t.Fatalf("unknown target status want ErrOrderStatusUnknown got %v", err)
	}

	err = ValidatePaymentStatusTransition("delivered", "paid")
	if !errors.Is(err, ErrOrderStatusTerminal) {
		t.Fatalf("delivered is terminal, want ErrOrderStatusTerminal got %v", err)
	}
	err = ValidatePaymentStatusTransition("canceled", "pending")
	if !errors.Is(err, ErrOrderStatusTerminal) {
		t.Fatalf("canceled is terminal, want ErrOrderStatusTerminal got %v", err)
	}
}
