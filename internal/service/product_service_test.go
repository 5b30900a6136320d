package service

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/freshcart/freshcart/internal/repository"

	"github.com/shopspring/decimal"
)

func TestProductCreateDuplicateRejected(t *testing.T) {
	db := setupStoreDB(t)
	svc := NewProductService(repository.NewProductRepository(db))

	first, err := svc.Create(CreateProductInput{
		Name:     "Brown Bread 400g",
		Category: "bakery",
		Price:    decimal.RequireFromString("2.49"),
	})
	if err != nil {
		t.Fatalf("create first product failed: %v", err)
	}
	if first.ID == 0 {
		t.Fatalf("expected persisted product id")
	}

	// 归一化后同名，创建被拒绝且不落库
	_, err = svc.Create(CreateProductInput{
		Name:     "Brown Breads",
		Category: "bakery",
		Price:    decimal.RequireFromString("2.99"),
	})
	if !errors.Is(err, ErrProductDuplicate) {
		t.Fatalf("want ErrProductDuplicate got %v", err)
	}

	names, err := repository.NewProductRepository(db).ListNames()
	if err != nil {
		t.Fatalf("list names failed: %v", err)
	}
	if len(names) != 1 {
		t.Fatalf("rejected create must not persist, got %d products", len(names))
	}
}

func TestProductCreateValidation(t *testing.T) {
	db := setupStoreDB(t)
	svc := NewProductService(repository.NewProductRepository(db))

	_, err := svc.Create(CreateProductInput{Name: "  ", Price: decimal.RequireFromString("1.00")})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank name want ErrInvalidInput got %v", err)
	}

	_, err = svc.Create(CreateProductInput{Name: "Hummus", Price: decimal.Zero})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero price want ErrInvalidInput got %v", err)
	}

	product, err := svc.Create(CreateProductInput{
		Name:     "Hummus",
		Category: "snacks",
		Price:    decimal.RequireFromString("2.999"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if got := product.Price.String(); got != "3.00" {
		t.Fatalf("price should round to 2 decimals, want 3.00 got %s", got)
	}
	if product.Rating != 4.0 {
		t.Fatalf("default rating want 4.0 got %v", product.Rating)
	}
	if !product.InStock {
		t.Fatalf("default in_stock want true")
	}
}

func TestProductUpdateAndDelete(t *testing.T) {
	db := setupStoreDB(t)
	svc := NewProductService(repository.NewProductRepository(db))

	product, err := svc.Create(CreateProductInput{
		Name:     "Cherry Tomatoes 500g",
		Category: "vegetables",
		Price:    decimal.RequireFromString("3.99"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	id := strconv.FormatUint(uint64(product.ID), 10)

	inStock := false
	updated, err := svc.Update(id, CreateProductInput{
		Name:     "Cherry Tomatoes 500g",
		Category: "vegetables",
		Price:    decimal.RequireFromString("4.29"),
		InStock:  &inStock,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got := updated.Price.String(); got != "4.29" {
		t.Fatalf("updated price want 4.29 got %s", got)
	}
	if updated.InStock {
		t.Fatalf("updated in_stock want false")
	}

	if err := svc.Delete(id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted product want ErrNotFound got %v", err)
	}
	if err := svc.Delete(id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete want ErrNotFound got %v", err)
	}
}

func TestProductListPublicFilters(t *testing.T) {
	db := setupStoreDB(t)
	svc := NewProductService(repository.NewProductRepository(db))

	for i, spec := range []struct {
		name     string
		category string
		inStock  bool
	}{
		{name: "Organic Bananas 1kg", category: "fruits", inStock: true},
		{name: "Honeycrisp Apples 1kg", category: "fruits", inStock: false},
		{name: "Whole Milk 2L", category: "dairy", inStock: true},
	} {
		product := createTestProduct(t, db, spec.name, fmt.Sprintf("%d.50", i+1), spec.inStock)
		if product.Category != spec.category {
			if err := db.Model(product).Update("category", spec.category).Error; err != nil {
				t.Fatalf("set category failed: %v", err)
			}
		}
	}

	items, total, err := svc.ListPublic("fruits", "", false, 1, 20)
	if err != nil {
		t.Fatalf("list fruits failed: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("fruits want 2 got total=%d len=%d", total, len(items))
	}

	items, total, err = svc.ListPublic("fruits", "", true, 1, 20)
	if err != nil {
		t.Fatalf("list in-stock fruits failed: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].Name != "Organic Bananas 1kg" {
		t.Fatalf("in-stock fruits want only bananas, got total=%d items=%+v", total, items)
	}

	items, total, err = svc.ListPublic("", "milk", false, 1, 20)
	if err != nil {
		t.Fatalf("search milk failed: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].Name != "Whole Milk 2L" {
		t.Fatalf("search milk want 1 hit, got total=%d items=%+v", total, items)
	}

	// 管理端列表不过滤缺货商品
	_, total, err = svc.ListAdmin("fruits", "", 1, 20)
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("admin fruits want 2 got %d", total)
	}
}
