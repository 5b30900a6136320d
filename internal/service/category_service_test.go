package service

import (
	"errors"
	"strconv"
	"testing"

	"github.com/freshcart/freshcart/internal/repository"
)

func TestCategoryCreateSlugUnique(t *testing.T) {
	db := setupStoreDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	_, err := svc.Create(CreateCategoryInput{Slug: "fruits", Name: "Fresh Fruits"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	_, err = svc.Create(CreateCategoryInput{Slug: "fruits", Name: "More Fruits"})
	if !errors.Is(err, ErrSlugExists) {
		t.Fatalf("duplicate slug want ErrSlugExists got %v", err)
	}
	_, err = svc.Create(CreateCategoryInput{Slug: "", Name: "Broken"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank slug want ErrInvalidInput got %v", err)
	}
}

func TestCategoryUpdateKeepsOwnSlug(t *testing.T) {
	db := setupStoreDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	category, err := svc.Create(CreateCategoryInput{Slug: "dairy", Name: "Dairy"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	other, err := svc.Create(CreateCategoryInput{Slug: "bakery", Name: "Bakery"})
	if err != nil {
		t.Fatalf("create second category failed: %v", err)
	}

	id := strconv.FormatUint(uint64(category.ID), 10)
	// 改名但保留自身 slug 不算冲突
	updated, err := svc.Update(id, CreateCategoryInput{Slug: "dairy", Name: "Dairy & Eggs"})
	if err != nil {
		t.Fatalf("update with own slug failed: %v", err)
	}
	if updated.Name != "Dairy & Eggs" {
		t.Fatalf("name want Dairy & Eggs got %s", updated.Name)
	}

	// 抢占他人 slug 被拒绝
	_, err = svc.Update(id, CreateCategoryInput{Slug: other.Slug, Name: "Dairy"})
	if !errors.Is(err, ErrSlugExists) {
		t.Fatalf("taking another slug want ErrSlugExists got %v", err)
	}
}

func TestCategoryDeleteInUse(t *testing.T) {
	db := setupStoreDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	category, err := svc.Create(CreateCategoryInput{Slug: "fruits", Name: "Fresh Fruits"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	createTestProduct(t, db, "Organic Bananas 1kg", "2.99", true)

	id := strconv.FormatUint(uint64(category.ID), 10)
	if err := svc.Delete(id); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("category with products want ErrCategoryInUse got %v", err)
	}

	// 商品清空后允许删除
	if err := db.Exec("DELETE FROM products").Error; err != nil {
		t.Fatalf("clear products failed: %v", err)
	}
	if err := svc.Delete(id); err != nil {
		t.Fatalf("delete empty category failed: %v", err)
	}
	if err := svc.Delete(id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete want ErrNotFound got %v", err)
	}
}
