package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/freshcart/freshcart/internal/config"
	"github.com/freshcart/freshcart/internal/models"
)

func TestSendOrderStatusEmailGuards(t *testing.T) {
	disabled := NewEmailService(&config.EmailConfig{Enabled: false})
	err := disabled.SendOrderStatusEmail("shopper@example.com", OrderStatusEmailInput{}, "en-US")
	if !errors.Is(err, ErrEmailServiceDisabled) {
		t.Fatalf("disabled service want ErrEmailServiceDisabled got %v", err)
	}

	unconfigured := NewEmailService(&config.EmailConfig{Enabled: true})
	err = unconfigured.SendOrderStatusEmail("shopper@example.com", OrderStatusEmailInput{}, "en-US")
	if !errors.Is(err, ErrEmailServiceNotConfigured) {
		t.Fatalf("unconfigured service want ErrEmailServiceNotConfigured got %v", err)
	}

	configured := NewEmailService(&config.EmailConfig{
		Enabled: true,
		Host:    "smtp.example.com",
		Port:    465,
		From:    "noreply@example.com",
	})
	err = configured.SendOrderStatusEmail("not-an-address", OrderStatusEmailInput{}, "en-US")
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("bad recipient want ErrInvalidEmail got %v", err)
	}
}

func TestBuildOrderStatusContent(t *testing.T) {
	total, err := models.NewMoneyFromString("25.50")
	if err != nil {
		t.Fatalf("parse money failed: %v", err)
	}
	input := OrderStatusEmailInput{
		OrderNo:         "FC20260831120000123456",
		Status:          "paid",
		Total:           total,
		DeliveryAddress: "12 Market Street",
	}

	subject, body := buildOrderStatusContent(input, "en-US")
	if !strings.Contains(subject, "Paid") {
		t.Fatalf("subject should carry localized status, got %q", subject)
	}
	if !strings.Contains(body, input.OrderNo) || !strings.Contains(body, "25.50") {
		t.Fatalf("body should carry order no and total, got %q", body)
	}
	if !strings.Contains(body, "12 Market Street") {
		t.Fatalf("body should carry delivery address, got %q", body)
	}

	subjectZh, _ := buildOrderStatusContent(input, "zh-CN")
	if !strings.Contains(subjectZh, "已支付") {
		t.Fatalf("zh subject should carry localized status, got %q", subjectZh)
	}

	// 未知状态回退为原始串
	subjectRaw, _ := buildOrderStatusContent(OrderStatusEmailInput{OrderNo: "FC1", Status: "archived", Total: total}, "en-US")
	if !strings.Contains(subjectRaw, "archived") {
		t.Fatalf("unknown status should fall back to raw value, got %q", subjectRaw)
	}
}
