package repository

import (
	"fmt"
	"testing"

	"github.com/freshcart/freshcart/internal/models"
)

func TestProductListPagination(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewProductRepository(db)

	for i := 1; i <= 5; i++ {
		amount, err := models.NewMoneyFromString(fmt.Sprintf("%d.00", i))
		if err != nil {
			t.Fatalf("parse price failed: %v", err)
		}
		product := &models.Product{
			Name:      fmt.Sprintf("Product %c", 'A'+i-1),
			Category:  "fruits",
			Price:     amount,
			InStock:   true,
			SortOrder: i,
		}
		if err := repo.Create(product); err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	items, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("list page 1 failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("total want 5 got %d", total)
	}
	if len(items) != 2 {
		t.Fatalf("page size want 2 got %d", len(items))
	}
	// sort_order 倒序
	if items[0].SortOrder != 5 || items[1].SortOrder != 4 {
		t.Fatalf("expected sort_order desc, got %d %d", items[0].SortOrder, items[1].SortOrder)
	}

	items, _, err = repo.List(ProductListFilter{Page: 3, PageSize: 2})
	if err != nil {
		t.Fatalf("list page 3 failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("last page want 1 item got %d", len(items))
	}

	// 非法页码回退到第一页
	items, _, err = repo.List(ProductListFilter{Page: 0, PageSize: 2})
	if err != nil {
		t.Fatalf("list page 0 failed: %v", err)
	}
	if len(items) != 2 || items[0].SortOrder != 5 {
		t.Fatalf("page 0 should behave as page 1, got %+v", items)
	}
}

func TestProductListNamesAndSoftDelete(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewProductRepository(db)

	amount, err := models.NewMoneyFromString("2.49")
	if err != nil {
		t.Fatalf("parse price failed: %v", err)
	}
	product := &models.Product{Name: "Brown Bread 400g", Category: "bakery", Price: amount, InStock: true}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	names, err := repo.ListNames()
	if err != nil {
		t.Fatalf("list names failed: %v", err)
	}
	if len(names) != 1 || names[0] != "Brown Bread 400g" {
		t.Fatalf("names want [Brown Bread 400g] got %v", names)
	}

	id := fmt.Sprintf("%d", product.ID)
	if err := repo.Delete(id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// 软删除后不再参与查询与重名检测
	got, err := repo.GetByID(id)
	if err != nil {
		t.Fatalf("get deleted failed: %v", err)
	}
	if got != nil {
		t.Fatalf("deleted product should not be readable, got %+v", got)
	}
	names, err = repo.ListNames()
	if err != nil {
		t.Fatalf("list names failed: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("deleted product name should disappear, got %v", names)
	}
}
