package service

import (
	"strings"

	"github.com/freshcart/freshcart/internal/constants"
)

// knownPaymentStatuses 合法的订单支付状态集合
var knownPaymentStatuses = map[string]bool{
	constants.PaymentStatusPending:   true,
	constants.PaymentStatusPaid:      true,
	constants.PaymentStatusShipped:   true,
	constants.PaymentStatusDelivered: true,
	constants.PaymentStatusCanceled:  true,
}

// terminalPaymentStatuses 终态集合，进入后状态不再变更
var terminalPaymentStatuses = map[string]bool{
	constants.PaymentStatusDelivered: true,
	constants.PaymentStatusCanceled:  true,
}

// NormalizePaymentStatus 归一化支付状态，未知状态返回空串
func NormalizePaymentStatus(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	if knownPaymentStatuses[value] {
		return value
	}
	return ""
}

// IsTerminalPaymentStatus 判断是否终态
func IsTerminalPaymentStatus(status string) bool {
	return terminalPaymentStatuses[strings.ToLower(strings.TrimSpace(status))]
}

// ValidatePaymentStatusTransition 校验状态变更：目标状态必须已知，
// 终态（delivered/canceled）之后不允许任何变更，其余变更放行。
func ValidatePaymentStatusTransition(current, next string) error {
	normalized := NormalizePaymentStatus(next)
	if normalized == "" {
		return ErrOrderStatusUnknown
	}
	if IsTerminalPaymentStatus(current) {
		return ErrOrderStatusTerminal
	}
	return nil
}
