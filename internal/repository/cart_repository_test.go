package repository

import (
	"fmt"
	"testing"

	"github.com/stallfront/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewCartRepository(db), db
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price int64) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:  name,
		Price: models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Stock: 10,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestUpsertAddAccumulatesQuantity(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createTestProduct(t, db, "accumulate", 10)

	for _, qty := range []int{2, 1, 3} {
		item := &models.CartItem{SessionID: "s1", ProductID: product.ID, Quantity: qty}
		if err := repo.UpsertAdd(item); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}

	items, err := repo.ListBySession("s1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected single row per (session, product), got %d", len(items))
	}
	if items[0].Quantity != 6 {
		t.Fatalf("quantity want 6 got %d", items[0].Quantity)
	}
}

func TestUpsertAddSeparatesSessions(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createTestProduct(t, db, "sessions", 10)

	if err := repo.UpsertAdd(&models.CartItem{SessionID: "s1", ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("upsert s1 failed: %v", err)
	}
	if err := repo.UpsertAdd(&models.CartItem{SessionID: "s2", ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("upsert s2 failed: %v", err)
	}

	items1, err := repo.ListBySession("s1")
	if err != nil {
		t.Fatalf("list s1 failed: %v", err)
	}
	items2, err := repo.ListBySession("s2")
	if err != nil {
		t.Fatalf("list s2 failed: %v", err)
	}
	if len(items1) != 1 || items1[0].Quantity != 1 {
		t.Fatalf("unexpected s1 items: %+v", items1)
	}
	if len(items2) != 1 || items2[0].Quantity != 2 {
		t.Fatalf("unexpected s2 items: %+v", items2)
	}
}

func TestClearBySessionLeavesOtherSessions(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	p1 := createTestProduct(t, db, "clear-p1", 10)
	p2 := createTestProduct(t, db, "clear-p2", 5)

	if err := repo.UpsertAdd(&models.CartItem{SessionID: "s1", ProductID: p1.ID, Quantity: 1}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := repo.UpsertAdd(&models.CartItem{SessionID: "s1", ProductID: p2.ID, Quantity: 1}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := repo.UpsertAdd(&models.CartItem{SessionID: "s2", ProductID: p1.ID, Quantity: 4}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if err := repo.ClearBySession("s1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	items1, err := repo.ListBySession("s1")
	if err != nil {
		t.Fatalf("list s1 failed: %v", err)
	}
	if len(items1) != 0 {
		t.Fatalf("expected cleared cart, got %d items", len(items1))
	}
	items2, err := repo.ListBySession("s2")
	if err != nil {
		t.Fatalf("list s2 failed: %v", err)
	}
	if len(items2) != 1 || items2[0].Quantity != 4 {
		t.Fatalf("other session cart must be untouched: %+v", items2)
	}
}

func TestListBySessionPreloadsProduct(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createTestProduct(t, db, "preload", 42)

	if err := repo.UpsertAdd(&models.CartItem{SessionID: "s1", ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	items, err := repo.ListBySession("s1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 || items[0].Product == nil {
		t.Fatalf("expected joined product, got %+v", items)
	}
	if items[0].Product.Price.String() != "42.00" {
		t.Fatalf("price want 42.00 got %s", items[0].Product.Price.String())
	}
}
