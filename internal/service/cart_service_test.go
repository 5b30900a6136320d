package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/freshcart/freshcart/internal/models"
	"github.com/freshcart/freshcart/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupStoreDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	models.DB = db
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, name, price string, inStock bool) *models.Product {
	t.Helper()
	amount, err := models.NewMoneyFromString(price)
	if err != nil {
		t.Fatalf("parse price failed: %v", err)
	}
	product := &models.Product{
		Name:     name,
		Category: "fruits",
		Price:    amount,
		Rating:   4.0,
		InStock:  inStock,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	// in_stock 带默认值标签，零值在插入时会被跳过，需显式覆盖
	if !inStock {
		if err := db.Model(product).Update("in_stock", false).Error; err != nil {
			t.Fatalf("mark product out of stock failed: %v", err)
		}
		product.InStock = false
	}
	return product
}

func newTestCartService(db *gorm.DB) *CartService {
	return NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))
}

func TestCartAddItemMergesQuantity(t *testing.T) {
	db := setupStoreDB(t)
	svc := newTestCartService(db)
	product := createTestProduct(t, db, "Organic Bananas 1kg", "2.99", true)

	if err := svc.AddItem(1, product.ID); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := svc.AddItem(1, product.ID); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	details, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("same product should merge into one line, got %d", len(details))
	}
	if details[0].Quantity != 2 {
		t.Fatalf("quantity want 2 got %d", details[0].Quantity)
	}
}

func TestCartAddItemOutOfStock(t *testing.T) {
	db := setupStoreDB(t)
	svc := newTestCartService(db)
	product := createTestProduct(t, db, "Salted Mixed Nuts 300g", "6.49", false)

	err := svc.AddItem(1, product.ID)
	if !errors.Is(err, ErrProductOutOfStock) {
		t.Fatalf("want ErrProductOutOfStock got %v", err)
	}

	details, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(details) != 0 {
		t.Fatalf("rejected add must not touch cart, got %d items", len(details))
	}
}

func TestCartAddItemUnknownProduct(t *testing.T) {
	db := setupStoreDB(t)
	svc := newTestCartService(db)

	err := svc.AddItem(1, 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}

func TestCartSetQuantity(t *testing.T) {
	db := setupStoreDB(t)
	svc := newTestCartService(db)
	product := createTestProduct(t, db, "Whole Milk 2L", "3.49", true)

	if err := svc.AddItem(1, product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.SetQuantity(1, product.ID, 5); err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}

	details, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(details) != 1 || details[0].Quantity != 5 {
		t.Fatalf("quantity want 5 got %+v", details)
	}

	// 数量 0 等价删除
	if err := svc.SetQuantity(1, product.ID, 0); err != nil {
		t.Fatalf("set quantity zero failed: %v", err)
	}
	details, err = svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(details) != 0 {
		t.Fatalf("zero quantity should remove the line, got %d items", len(details))
	}
}

func TestCartSetQuantityAbsentIsNoop(t *testing.T) {
	db := setupStoreDB(t)
	svc := newTestCartService(db)
	product := createTestProduct(t, db, "Baby Spinach 200g", "3.29", true)

	if err := svc.SetQuantity(1, product.ID, 3); err != nil {
		t.Fatalf("set quantity on absent product failed: %v", err)
	}
	details, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(details) != 0 {
		t.Fatalf("absent product must not create a line, got %d items", len(details))
	}
}

func TestCartListOrderAndStalePruning(t *testing.T) {
	db := setupStoreDB(t)
	svc := newTestCartService(db)
	first := createTestProduct(t, db, "Honeycrisp Apples 1kg", "4.49", true)
	second := createTestProduct(t, db, "Brown Bread 400g", "2.49", true)
	doomed := createTestProduct(t, db, "Butter Croissants 4pk", "4.99", true)

	for _, id := range []uint{first.ID, second.ID, doomed.ID} {
		if err := svc.AddItem(7, id); err != nil {
			t.Fatalf("add product %d failed: %v", id, err)
		}
	}

	// 商品删除后，加载购物车时对应条目被清理
	if err := db.Delete(&models.Product{}, doomed.ID).Error; err != nil {
		t.Fatalf("delete product failed: %v", err)
	}

	details, err := svc.ListByUser(7)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("stale line should be pruned, got %d items", len(details))
	}
	if details[0].ProductID != first.ID || details[1].ProductID != second.ID {
		t.Fatalf("cart should keep insertion order, got %+v", details)
	}

	var remaining int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", 7).Count(&remaining).Error; err != nil {
		t.Fatalf("count cart rows failed: %v", err)
	}
	if remaining != 2 {
		t.Fatalf("stale row should be deleted from storage, got %d", remaining)
	}
}

func TestCartRemoveThenAddCreatesFreshLine(t *testing.T) {
	db := setupStoreDB(t)
	svc := newTestCartService(db)
	product := createTestProduct(t, db, "Classic Hummus 250g", "2.79", true)

	if err := svc.AddItem(4, product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.AddItem(4, product.ID); err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if err := svc.RemoveItem(4, product.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	// 删除后重新加入必须生成数量为 1 的新条目
	if err := svc.AddItem(4, product.ID); err != nil {
		t.Fatalf("re-add after remove failed: %v", err)
	}
	details, err := svc.ListByUser(4)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(details) != 1 || details[0].Quantity != 1 {
		t.Fatalf("re-add should create a fresh line with quantity 1, got %+v", details)
	}
}

func TestCartClearThenAddAgain(t *testing.T) {
	db := setupStoreDB(t)
	svc := newTestCartService(db)
	product := createTestProduct(t, db, "Sparkling Water 330ml", "1.19", true)

	if err := svc.AddItem(5, product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Clear(5); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if err := svc.AddItem(5, product.ID); err != nil {
		t.Fatalf("re-add after clear failed: %v", err)
	}
	details, err := svc.ListByUser(5)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(details) != 1 || details[0].Quantity != 1 {
		t.Fatalf("re-add after clear should create a fresh line, got %+v", details)
	}
}

func TestCartListPrunesOutOfStock(t *testing.T) {
	db := setupStoreDB(t)
	svc := newTestCartService(db)
	kept := createTestProduct(t, db, "Free Range Eggs 12pcs", "5.49", true)
	flipped := createTestProduct(t, db, "Salted Mixed Nuts 300g", "6.49", true)

	for _, id := range []uint{kept.ID, flipped.ID} {
		if err := svc.AddItem(8, id); err != nil {
			t.Fatalf("add product %d failed: %v", id, err)
		}
	}

	// 商品下架后，加载购物车时对应条目被清理
	if err := db.Model(flipped).Update("in_stock", false).Error; err != nil {
		t.Fatalf("mark product out of stock failed: %v", err)
	}

	details, err := svc.ListByUser(8)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(details) != 1 || details[0].ProductID != kept.ID {
		t.Fatalf("out-of-stock line should be pruned, got %+v", details)
	}

	var remaining int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", 8).Count(&remaining).Error; err != nil {
		t.Fatalf("count cart rows failed: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("pruned row should be deleted from storage, got %d", remaining)
	}
}

func TestCartClear(t *testing.T) {
	db := setupStoreDB(t)
	svc := newTestCartService(db)
	product := createTestProduct(t, db, "Fresh Orange Juice 1L", "4.29", true)

	if err := svc.AddItem(2, product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Clear(2); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	details, err := svc.ListByUser(2)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(details) != 0 {
		t.Fatalf("cart should be empty after clear, got %d items", len(details))
	}
}

func TestCartUnitPriceSnapshot(t *testing.T) {
	db := setupStoreDB(t)
	svc := newTestCartService(db)
	product := createTestProduct(t, db, "Cherry Tomatoes 500g", "3.99", true)

	if err := svc.AddItem(3, product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	details, err := svc.ListByUser(3)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("want 1 item got %d", len(details))
	}
	if !details[0].UnitPrice.Decimal.Equal(decimal.RequireFromString("3.99")) {
		t.Fatalf("unit price want 3.99 got %s", details[0].UnitPrice.String())
	}
}
