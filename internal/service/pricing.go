package service

import (
	"github.com/freshcart/freshcart/internal/models"

	"github.com/shopspring/decimal"
)

// TaxRate 固定税率 2%
var TaxRate = decimal.NewFromFloat(0.02)

// CartTotals 购物车金额汇总
type CartTotals struct {
	Subtotal models.Money `json:"subtotal"`
	Tax      models.Money `json:"tax"`
	Total    models.Money `json:"total"`
}

// ComputeCartTotals 基于购物车快照计算金额：
// subtotal = Σ 单价×数量；tax = subtotal×税率；total = subtotal+tax。
// 全程 decimal 运算，仅在 Money 边界按 2 位小数取整。
func ComputeCartTotals(items []CartItemDetail) CartTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		line := item.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}
	tax := subtotal.Mul(TaxRate)
	total := subtotal.Add(tax)
	return CartTotals{
		Subtotal: models.NewMoneyFromDecimal(subtotal),
		Tax:      models.NewMoneyFromDecimal(tax),
		Total:    models.NewMoneyFromDecimal(total),
	}
}
