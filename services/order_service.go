package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/syafiqfadli/food-ordering-app-server/entity"
	"github.com/syafiqfadli/food-ordering-app-server/pkg/apperr"
	"github.com/syafiqfadli/food-ordering-app-server/pkg/logger"
	"github.com/syafiqfadli/food-ordering-app-server/utils"
)

type OrderService struct {
	Store OrderStore
}

func NewOrderService(s OrderStore) *OrderService { return &OrderService{Store: s} }

// Checkout converts one cart group into an order. The snapshot is a copy;
// the commit is a single update that appends the order AND pulls the group,
// with the group id in its filter. If the group vanished between snapshot
// and commit the filter matches nothing and no order is created.
func (s *OrderService) Checkout(ctx context.Context, firebaseID, cartID string) (*entity.Order, error) {
	if firebaseID == "" || cartID == "" {
		return nil, apperr.ErrValidation
	}

	snap, ok, err := s.Store.CartGroupSnapshot(ctx, firebaseID, cartID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Cart")
	}

	order := entity.Order{
		OrderID:        utils.NewUID(),
		RestaurantID:   snap.RestaurantID,
		RestaurantName: snap.RestaurantName,
		Status:         entity.StatusInKitchen,
		OrderList:      append([]entity.CartLine(nil), snap.MenuList...),
	}

	_, ok, err = s.Store.CommitCheckout(ctx, firebaseID, cartID, order)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Cart")
	}

	logger.Log.Info("order placed",
		zap.String("firebaseId", firebaseID),
		zap.String("orderId", order.OrderID),
		zap.String("restaurantId", order.RestaurantID))

	return &order, nil
}

// ListForUser returns the user's order history, newest last.
func (s *OrderService) ListForUser(ctx context.Context, firebaseID string) ([]entity.Order, error) {
	if firebaseID == "" {
		return nil, apperr.ErrValidation
	}
	orders, ok, err := s.Store.UserOrders(ctx, firebaseID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return orders, nil
}

// AdvanceStatus moves an order along the fulfillment path. The current
// status rides in the store filter, so a concurrent advance loses cleanly.
func (s *OrderService) AdvanceStatus(ctx context.Context, orderID, from, to string) error {
	if orderID == "" || from == "" || to == "" {
		return apperr.ErrValidation
	}
	if !entity.CanTransition(from, to) {
		return apperr.ErrValidation
	}
	ok, err := s.Store.AdvanceOrderStatus(ctx, orderID, from, to)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Order")
	}
	return nil
}

// KitchenOrders is the restaurant-side listing across all users.
func (s *OrderService) KitchenOrders(ctx context.Context, restaurantID string) ([]entity.KitchenOrder, error) {
	if restaurantID == "" {
		return nil, apperr.ErrValidation
	}
	return s.Store.KitchenOrders(ctx, restaurantID)
}
