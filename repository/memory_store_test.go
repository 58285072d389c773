package repository

import (
	"context"
	"testing"

	"github.com/syafiqfadli/food-ordering-app-server/entity"
)

func newStoreWithUser(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	err := s.CreateUser(context.Background(), &entity.User{
		FirebaseID: "fb-1",
		Email:      "aiman@example.com",
		Name:       "Aiman",
		Cart: []entity.CartGroup{{
			CartID:         "c-1",
			RestaurantID:   "R1",
			RestaurantName: "Nasi Corner",
			MenuList:       []entity.CartLine{{MenuID: "M1", MenuName: "Nasi Lemak", Price: 12, Quantity: 2}},
		}},
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return s
}

func TestConditionalMatchSemantics(t *testing.T) {
	s := newStoreWithUser(t)
	ctx := context.Background()

	// no line for this menuId anywhere → no match, no error
	if _, ok, err := s.IncrementCartLine(ctx, "fb-1", "M9", 1); ok || err != nil {
		t.Fatalf("expected no match, got ok=%v err=%v", ok, err)
	}
	// no group for this restaurant → no match
	if _, ok, err := s.PushCartLine(ctx, "fb-1", "R9", entity.CartLine{MenuID: "M9"}); ok || err != nil {
		t.Fatalf("expected no match, got ok=%v err=%v", ok, err)
	}
	// unknown user → no match on any tier
	if _, ok, err := s.PushCartGroup(ctx, "ghost", entity.CartGroup{CartID: "c-9"}); ok || err != nil {
		t.Fatalf("expected no match, got ok=%v err=%v", ok, err)
	}

	u, ok, err := s.IncrementCartLine(ctx, "fb-1", "M1", 3)
	if err != nil || !ok {
		t.Fatalf("increment: ok=%v err=%v", ok, err)
	}
	if got := u.Cart[0].MenuList[0].Quantity; got != 5 {
		t.Fatalf("expected quantity 5, got %d", got)
	}
}

func TestPullLineRequiresGroupAndLine(t *testing.T) {
	s := newStoreWithUser(t)
	ctx := context.Background()

	if _, ok, _ := s.PullCartLine(ctx, "fb-1", "c-1", "M9"); ok {
		t.Fatal("expected no match for unknown line")
	}
	if _, ok, _ := s.PullCartLine(ctx, "fb-1", "c-9", "M1"); ok {
		t.Fatal("expected no match for unknown group")
	}
	u, ok, err := s.PullCartLine(ctx, "fb-1", "c-1", "M1")
	if err != nil || !ok {
		t.Fatalf("pull line: ok=%v err=%v", ok, err)
	}
	if len(u.Cart[0].MenuList) != 0 {
		t.Fatalf("expected empty menu list, got %+v", u.Cart[0].MenuList)
	}
}

func TestCommitCheckoutIsAtomic(t *testing.T) {
	s := newStoreWithUser(t)
	ctx := context.Background()

	order := entity.Order{
		OrderID:      "o-1",
		RestaurantID: "R1",
		Status:       entity.StatusInKitchen,
		OrderList:    []entity.CartLine{{MenuID: "M1", Quantity: 2}},
	}

	// a vanished group means neither effect applies
	if _, ok, _ := s.CommitCheckout(ctx, "fb-1", "c-9", order); ok {
		t.Fatal("expected no match for unknown group")
	}
	u, _, _ := s.FindUserByFirebaseID(ctx, "fb-1")
	if len(u.Order) != 0 || len(u.Cart) != 1 {
		t.Fatalf("expected nothing applied, got %+v", u)
	}

	u, ok, err := s.CommitCheckout(ctx, "fb-1", "c-1", order)
	if err != nil || !ok {
		t.Fatalf("commit: ok=%v err=%v", ok, err)
	}
	if len(u.Cart) != 0 || len(u.Order) != 1 {
		t.Fatalf("expected group swapped for order, got %+v", u)
	}
}

func TestReturnedDocumentsAreCopies(t *testing.T) {
	s := newStoreWithUser(t)
	ctx := context.Background()

	snap, ok, err := s.CartGroupSnapshot(ctx, "fb-1", "c-1")
	if err != nil || !ok {
		t.Fatalf("snapshot: ok=%v err=%v", ok, err)
	}
	snap.MenuList[0].Quantity = 99

	u, _, _ := s.FindUserByFirebaseID(ctx, "fb-1")
	if got := u.Cart[0].MenuList[0].Quantity; got != 2 {
		t.Fatalf("snapshot mutation leaked into store: %d", got)
	}

	u.Cart[0].MenuList[0].Quantity = 50
	again, _, _ := s.FindUserByFirebaseID(ctx, "fb-1")
	if got := again.Cart[0].MenuList[0].Quantity; got != 2 {
		t.Fatalf("returned user mutation leaked into store: %d", got)
	}
}

func TestAdvanceOrderStatusGuard(t *testing.T) {
	s := newStoreWithUser(t)
	ctx := context.Background()

	if _, ok, _ := s.CommitCheckout(ctx, "fb-1", "c-1", entity.Order{
		OrderID: "o-1", RestaurantID: "R1", Status: entity.StatusInKitchen,
	}); !ok {
		t.Fatal("commit failed")
	}

	ok, err := s.AdvanceOrderStatus(ctx, "o-1", entity.StatusInKitchen, entity.StatusOutForDelivery)
	if err != nil || !ok {
		t.Fatalf("advance: ok=%v err=%v", ok, err)
	}
	// old status no longer matches
	ok, err = s.AdvanceOrderStatus(ctx, "o-1", entity.StatusInKitchen, entity.StatusOutForDelivery)
	if err != nil || ok {
		t.Fatalf("expected stale advance to miss, ok=%v err=%v", ok, err)
	}
}
