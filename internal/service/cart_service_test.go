package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stallfront/internal/models"
	"github.com/stallfront/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	models.DB = db
	svc := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))
	return svc, db
}

func createServiceProduct(t *testing.T, db *gorm.DB, name string, price string) *models.Product {
	t.Helper()
	amount, err := models.NewMoneyFromString(price)
	if err != nil {
		t.Fatalf("parse price failed: %v", err)
	}
	product := &models.Product{
		Name:  name,
		Price: amount,
		Stock: 100,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestAddItemSerialAddsAccumulate(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createServiceProduct(t, db, "earphones", "10.00")

	quantities := []int{2, 1, 5}
	sum := 0
	for _, q := range quantities {
		if err := svc.AddItem("s1", product.ID, q); err != nil {
			t.Fatalf("add item failed: %v", err)
		}
		sum += q
	}

	items, err := svc.ListBySession("s1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected exactly one cart row, got %d", len(items))
	}
	if items[0].Quantity != sum {
		t.Fatalf("quantity want %d got %d", sum, items[0].Quantity)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	err := svc.AddItem("s1", 99999, 1)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createServiceProduct(t, db, "zero-qty", "10.00")

	for _, q := range []int{0, -3} {
		if err := svc.AddItem("s1", product.ID, q); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("quantity %d: expected ErrInvalidQuantity, got %v", q, err)
		}
	}
}

func TestUpdateQuantityZeroOrNegativeDeletes(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		t.Run(fmt.Sprintf("quantity_%d", quantity), func(t *testing.T) {
			svc, db := setupCartServiceTest(t)
			product := createServiceProduct(t, db, "delete-on-zero", "10.00")

			if err := svc.AddItem("s1", product.ID, 2); err != nil {
				t.Fatalf("add item failed: %v", err)
			}
			items, err := svc.ListBySession("s1")
			if err != nil || len(items) != 1 {
				t.Fatalf("unexpected cart state: %v %+v", err, items)
			}

			if err := svc.UpdateQuantity("s1", items[0].ID, quantity); err != nil {
				t.Fatalf("update failed: %v", err)
			}
			items, err = svc.ListBySession("s1")
			if err != nil {
				t.Fatalf("list failed: %v", err)
			}
			if len(items) != 0 {
				t.Fatalf("row must be deleted for quantity %d", quantity)
			}
		})
	}
}

func TestUpdateQuantityOverwritesNotAccumulates(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createServiceProduct(t, db, "overwrite", "10.00")

	if err := svc.AddItem("s1", product.ID, 5); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	items, err := svc.ListBySession("s1")
	if err != nil || len(items) != 1 {
		t.Fatalf("unexpected cart state: %v %+v", err, items)
	}

	if err := svc.UpdateQuantity("s1", items[0].ID, 2); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	items, err = svc.ListBySession("s1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if items[0].Quantity != 2 {
		t.Fatalf("quantity want 2 got %d", items[0].Quantity)
	}
}

func TestCartOwnershipEnforced(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createServiceProduct(t, db, "foreign", "10.00")

	if err := svc.AddItem("s1", product.ID, 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	items, err := svc.ListBySession("s1")
	if err != nil || len(items) != 1 {
		t.Fatalf("unexpected cart state: %v %+v", err, items)
	}

	if err := svc.UpdateQuantity("s2", items[0].ID, 3); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("foreign session update: expected ErrCartItemNotFound, got %v", err)
	}
	if err := svc.RemoveItem("s2", items[0].ID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("foreign session remove: expected ErrCartItemNotFound, got %v", err)
	}

	// 原会话仍可正常操作
	if err := svc.RemoveItem("s1", items[0].ID); err != nil {
		t.Fatalf("owner remove failed: %v", err)
	}
}

func TestClearScopedToSession(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	p1 := createServiceProduct(t, db, "clear-a", "10.00")
	p2 := createServiceProduct(t, db, "clear-b", "5.00")

	if err := svc.AddItem("s1", p1.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.AddItem("s1", p2.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.AddItem("s2", p1.ID, 3); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := svc.Clear("s1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	items1, err := svc.ListBySession("s1")
	if err != nil {
		t.Fatalf("list s1 failed: %v", err)
	}
	if len(items1) != 0 {
		t.Fatalf("s1 cart must be empty, got %d", len(items1))
	}
	items2, err := svc.ListBySession("s2")
	if err != nil {
		t.Fatalf("list s2 failed: %v", err)
	}
	if len(items2) != 1 || items2[0].Quantity != 3 {
		t.Fatalf("s2 cart must be untouched: %+v", items2)
	}
}
