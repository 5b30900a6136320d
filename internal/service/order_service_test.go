package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/freshcart/freshcart/internal/constants"
	"github.com/freshcart/freshcart/internal/models"
	"github.com/freshcart/freshcart/internal/repository"

	"gorm.io/gorm"
)

func newTestOrderService(db *gorm.DB) (*OrderService, *CartService) {
	cartSvc := newTestCartService(db)
	orderSvc := NewOrderService(repository.NewOrderRepository(db), repository.NewCartRepository(db), cartSvc, nil)
	return orderSvc, cartSvc
}

func TestCreateOrderAddressRequired(t *testing.T) {
	db := setupStoreDB(t)
	orderSvc, cartSvc := newTestOrderService(db)
	product := createTestProduct(t, db, "Organic Bananas 1kg", "2.99", true)
	if err := cartSvc.AddItem(1, product.ID); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	_, err := orderSvc.CreateOrder(CreateOrderInput{UserID: 1, DeliveryAddress: "   "})
	if !errors.Is(err, ErrAddressRequired) {
		t.Fatalf("want ErrAddressRequired got %v", err)
	}

	// 校验失败不动购物车
	details, err := cartSvc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("cart should be untouched, got %d items", len(details))
	}
}

func TestCreateOrderEmptyCart(t *testing.T) {
	db := setupStoreDB(t)
	orderSvc, _ := newTestOrderService(db)

	_, err := orderSvc.CreateOrder(CreateOrderInput{UserID: 1, DeliveryAddress: "12 Market Street"})
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("want ErrCartEmpty got %v", err)
	}
}

func TestCreateOrderSuccess(t *testing.T) {
	db := setupStoreDB(t)
	orderSvc, cartSvc := newTestOrderService(db)
	bananas := createTestProduct(t, db, "Organic Bananas 1kg", "10.00", true)
	milk := createTestProduct(t, db, "Whole Milk 2L", "5.00", true)

	if err := cartSvc.AddItem(1, bananas.ID); err != nil {
		t.Fatalf("add bananas failed: %v", err)
	}
	if err := cartSvc.AddItem(1, bananas.ID); err != nil {
		t.Fatalf("add bananas again failed: %v", err)
	}
	if err := cartSvc.AddItem(1, milk.ID); err != nil {
		t.Fatalf("add milk failed: %v", err)
	}

	order, err := orderSvc.CreateOrder(CreateOrderInput{
		UserID:          1,
		DeliveryAddress: "12 Market Street",
		PaymentMethod:   "card",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if order.PaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("new order status want pending got %s", order.PaymentStatus)
	}
	if !strings.HasPrefix(order.OrderNo, "FC") {
		t.Fatalf("order no should carry FC prefix, got %s", order.OrderNo)
	}
	if order.PaymentMethod != constants.PaymentMethodCard {
		t.Fatalf("payment method want card got %s", order.PaymentMethod)
	}
	if got := order.SubtotalAmount.String(); got != "25.00" {
		t.Fatalf("subtotal want 25.00 got %s", got)
	}
	if got := order.TaxAmount.String(); got != "0.50" {
		t.Fatalf("tax want 0.50 got %s", got)
	}
	if got := order.TotalAmount.String(); got != "25.50" {
		t.Fatalf("total want 25.50 got %s", got)
	}
	if len(order.Items) != 2 {
		t.Fatalf("order items want 2 got %d", len(order.Items))
	}
	if order.Items[0].Name != bananas.Name {
		t.Fatalf("item snapshot name want %s got %s", bananas.Name, order.Items[0].Name)
	}
	if order.Items[0].Quantity != 2 {
		t.Fatalf("item quantity want 2 got %d", order.Items[0].Quantity)
	}
	if got := order.Items[0].TotalPrice.String(); got != "20.00" {
		t.Fatalf("item line total want 20.00 got %s", got)
	}

	// 下单成功后购物车被清空
	details, err := cartSvc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(details) != 0 {
		t.Fatalf("cart should be cleared, got %d items", len(details))
	}

	stored, err := orderSvc.GetByIDForUser(order.ID, 1)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if stored.OrderNo != order.OrderNo {
		t.Fatalf("stored order no mismatch: %s vs %s", stored.OrderNo, order.OrderNo)
	}
}

func TestCreateOrderThenShopAgain(t *testing.T) {
	db := setupStoreDB(t)
	orderSvc, cartSvc := newTestOrderService(db)
	product := createTestProduct(t, db, "Classic Hummus 250g", "2.79", true)
	if err := cartSvc.AddItem(1, product.ID); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	if _, err := orderSvc.CreateOrder(CreateOrderInput{UserID: 1, DeliveryAddress: "12 Market Street"}); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	// 下单清空购物车后，同一商品必须能重新加入
	if err := cartSvc.AddItem(1, product.ID); err != nil {
		t.Fatalf("re-add after order failed: %v", err)
	}
	details, err := cartSvc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(details) != 1 || details[0].Quantity != 1 {
		t.Fatalf("re-add after order should create a fresh line, got %+v", details)
	}
}

func TestCreateOrderFailureKeepsCart(t *testing.T) {
	db := setupStoreDB(t)
	orderSvc, cartSvc := newTestOrderService(db)
	product := createTestProduct(t, db, "Brown Bread 400g", "2.49", true)
	if err := cartSvc.AddItem(1, product.ID); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	// 订单表缺失使事务失败，购物车必须保持原状
	if err := db.Migrator().DropTable(&models.OrderItem{}); err != nil {
		t.Fatalf("drop table failed: %v", err)
	}
	_, err := orderSvc.CreateOrder(CreateOrderInput{UserID: 1, DeliveryAddress: "12 Market Street"})
	if err == nil {
		t.Fatalf("expected create order to fail")
	}

	details, err := cartSvc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("failed order must leave cart intact, got %d items", len(details))
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	db := setupStoreDB(t)
	orderSvc, cartSvc := newTestOrderService(db)
	product := createTestProduct(t, db, "Free Range Eggs 12pk", "5.99", true)
	if err := cartSvc.AddItem(1, product.ID); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	order, err := orderSvc.CreateOrder(CreateOrderInput{UserID: 1, DeliveryAddress: "12 Market Street"})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	updated, err := orderSvc.UpdatePaymentStatus(order.ID, "PAID")
	if err != nil {
		t.Fatalf("update to paid failed: %v", err)
	}
	if updated.PaymentStatus != constants.PaymentStatusPaid {
		t.Fatalf("status want paid got %s", updated.PaymentStatus)
	}

	_, err = orderSvc.UpdatePaymentStatus(order.ID, "refunded")
	if !errors.Is(err, ErrOrderStatusUnknown) {
		t.Fatalf("unknown status want ErrOrderStatusUnknown got %v", err)
	}

	if _, err := orderSvc.UpdatePaymentStatus(order.ID, "delivered"); err != nil {
		t.Fatalf("update to delivered failed: %v", err)
	}
	_, err = orderSvc.UpdatePaymentStatus(order.ID, "paid")
	if !errors.Is(err, ErrOrderStatusTerminal) {
		t.Fatalf("terminal order want ErrOrderStatusTerminal got %v", err)
	}

	_, err = orderSvc.UpdatePaymentStatus(9999, "paid")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("missing order want ErrOrderNotFound got %v", err)
	}
}
