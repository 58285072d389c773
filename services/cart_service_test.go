package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/syafiqfadli/food-ordering-app-server/entity"
	"github.com/syafiqfadli/food-ordering-app-server/pkg/apperr"
	"github.com/syafiqfadli/food-ordering-app-server/repository"
)

func seedUser(t *testing.T) *repository.MemoryStore {
	t.Helper()
	store := repository.NewMemoryStore()
	err := store.CreateUser(context.Background(), &entity.User{
		FirebaseID: "fb-1",
		Email:      "aiman@example.com",
		Name:       "Aiman",
		Cart:       []entity.CartGroup{},
		Order:      []entity.Order{},
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return store
}

func addIn() *AddToCartIn {
	return &AddToCartIn{
		FirebaseID:     "fb-1",
		RestaurantID:   "R1",
		RestaurantName: "Nasi Corner",
		MenuID:         "M1",
		MenuName:       "Nasi Lemak",
		Price:          12,
		Quantity:       1,
	}
}

func TestAddItemValidation(t *testing.T) {
	svc := NewCartService(seedUser(t))
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*AddToCartIn)
	}{
		{"missing firebaseId", func(in *AddToCartIn) { in.FirebaseID = "" }},
		{"missing restaurantId", func(in *AddToCartIn) { in.RestaurantID = "" }},
		{"missing restaurantName", func(in *AddToCartIn) { in.RestaurantName = "" }},
		{"missing menuId", func(in *AddToCartIn) { in.MenuID = "" }},
		{"missing menuName", func(in *AddToCartIn) { in.MenuName = "" }},
		{"missing price", func(in *AddToCartIn) { in.Price = 0 }},
		{"zero quantity", func(in *AddToCartIn) { in.Quantity = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := addIn()
			tt.mutate(in)
			if _, err := svc.AddItem(ctx, in); !errors.Is(err, apperr.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestAddItemCreatesGroup(t *testing.T) {
	svc := NewCartService(seedUser(t))
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, addIn())
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if len(cart) != 1 {
		t.Fatalf("expected 1 cart group, got %d", len(cart))
	}
	g := cart[0]
	if g.CartID == "" {
		t.Fatal("expected a generated cartId")
	}
	if g.RestaurantID != "R1" || g.RestaurantName != "Nasi Corner" {
		t.Fatalf("unexpected group: %+v", g)
	}
	if len(g.MenuList) != 1 || g.MenuList[0].MenuID != "M1" || g.MenuList[0].Quantity != 1 {
		t.Fatalf("unexpected menu list: %+v", g.MenuList)
	}
}

func TestAddItemAppendsToExistingGroup(t *testing.T) {
	svc := NewCartService(seedUser(t))
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, addIn()); err != nil {
		t.Fatalf("first add: %v", err)
	}
	in := addIn()
	in.MenuID = "M2"
	in.MenuName = "Teh Tarik"
	in.Price = 3
	cart, err := svc.AddItem(ctx, in)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(cart) != 1 {
		t.Fatalf("expected group count unchanged, got %d", len(cart))
	}
	if len(cart[0].MenuList) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart[0].MenuList))
	}
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	svc := NewCartService(seedUser(t))
	ctx := context.Background()

	in := addIn()
	in.Quantity = 2
	if _, err := svc.AddItem(ctx, in); err != nil {
		t.Fatalf("first add: %v", err)
	}

	// same menuId again; the restaurant fields do not matter for dedup
	in = addIn()
	in.Quantity = 3
	in.RestaurantID = "R2"
	in.RestaurantName = "Another Kitchen"
	cart, err := svc.AddItem(ctx, in)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(cart) != 1 {
		t.Fatalf("expected no new group, got %d groups", len(cart))
	}
	if len(cart[0].MenuList) != 1 {
		t.Fatalf("expected a single line, got %d", len(cart[0].MenuList))
	}
	if got := cart[0].MenuList[0].Quantity; got != 5 {
		t.Fatalf("expected quantity 5, got %d", got)
	}
}

func TestAddItemNewRestaurantNewGroup(t *testing.T) {
	svc := NewCartService(seedUser(t))
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, addIn()); err != nil {
		t.Fatalf("first add: %v", err)
	}
	in := addIn()
	in.RestaurantID = "R2"
	in.RestaurantName = "Another Kitchen"
	in.MenuID = "M9"
	in.MenuName = "Mee Goreng"
	cart, err := svc.AddItem(ctx, in)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(cart) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(cart))
	}
	if cart[0].CartID == cart[1].CartID {
		t.Fatal("expected distinct cart group ids")
	}
}

func TestAddItemUserNotFound(t *testing.T) {
	svc := NewCartService(repository.NewMemoryStore())
	in := addIn()
	_, err := svc.AddItem(context.Background(), in)
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) || nf.Object != "User" {
		t.Fatalf("expected User not found, got %v", err)
	}
}

func TestAddItemConcurrentIncrements(t *testing.T) {
	store := seedUser(t)
	svc := NewCartService(store)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, addIn()); err != nil {
		t.Fatalf("seed line: %v", err)
	}

	const n = 25
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.AddItem(ctx, addIn()); err != nil {
				t.Errorf("concurrent add: %v", err)
			}
		}()
	}
	wg.Wait()

	cart, _, err := store.UserCart(ctx, "fb-1")
	if err != nil {
		t.Fatalf("read cart: %v", err)
	}
	if len(cart) != 1 || len(cart[0].MenuList) != 1 {
		t.Fatalf("expected a single line, got %+v", cart)
	}
	if got := cart[0].MenuList[0].Quantity; got != n+1 {
		t.Fatalf("expected quantity %d, got %d", n+1, got)
	}
}

func TestRemoveLine(t *testing.T) {
	svc := NewCartService(seedUser(t))
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, addIn()); err != nil {
		t.Fatalf("add: %v", err)
	}
	in := addIn()
	in.MenuID = "M2"
	in.MenuName = "Teh Tarik"
	cart, err := svc.AddItem(ctx, in)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	cartID := cart[0].CartID

	cart, err = svc.RemoveLine(ctx, "fb-1", cartID, "M1")
	if err != nil {
		t.Fatalf("remove line: %v", err)
	}
	if len(cart[0].MenuList) != 1 || cart[0].MenuList[0].MenuID != "M2" {
		t.Fatalf("unexpected cart after removal: %+v", cart)
	}

	_, err = svc.RemoveLine(ctx, "fb-1", cartID, "M1")
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) || nf.Object != "Menu" {
		t.Fatalf("expected Menu not found, got %v", err)
	}
}

func TestRemoveGroupIdempotence(t *testing.T) {
	svc := NewCartService(seedUser(t))
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, addIn())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	cartID := cart[0].CartID

	cart, err = svc.RemoveGroup(ctx, "fb-1", cartID)
	if err != nil {
		t.Fatalf("first remove: %v", err)
	}
	if len(cart) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}

	// second remove reports not found and does not undo the first
	_, err = svc.RemoveGroup(ctx, "fb-1", cartID)
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) || nf.Object != "Cart" {
		t.Fatalf("expected Cart not found, got %v", err)
	}
}
