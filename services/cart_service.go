package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/syafiqfadli/food-ordering-app-server/entity"
	"github.com/syafiqfadli/food-ordering-app-server/pkg/apperr"
	"github.com/syafiqfadli/food-ordering-app-server/pkg/logger"
	"github.com/syafiqfadli/food-ordering-app-server/utils"
)

type CartService struct {
	Store CartStore
}

func NewCartService(s CartStore) *CartService { return &CartService{Store: s} }

type AddToCartIn struct {
	FirebaseID     string `json:"firebaseId" binding:"required"`
	RestaurantID   string `json:"restaurantId" binding:"required"`
	RestaurantName string `json:"restaurantName" binding:"required"`
	MenuID         string `json:"menuId" binding:"required"`
	MenuName       string `json:"menuName" binding:"required"`
	Price          int64  `json:"price" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required,min=1"`
}

// AddItem resolves an add-to-cart intent in three tiers, each one conditional
// update, stopping at the first that matches:
//
//  1. a line for this menuId exists somewhere in the cart → $inc its quantity
//     (dedup is by menuId alone; the group holding it does not matter)
//  2. a group for this restaurant exists → $push the line into it
//  3. otherwise → $push a whole new group with a fresh cartId
//
// No in-process lock: two concurrent adds are serialized by the store's
// per-document updates, so a duplicate line or group can never appear.
func (s *CartService) AddItem(ctx context.Context, in *AddToCartIn) ([]entity.CartGroup, error) {
	if in.FirebaseID == "" || in.RestaurantID == "" || in.RestaurantName == "" ||
		in.MenuID == "" || in.MenuName == "" || in.Price == 0 || in.Quantity < 1 {
		return nil, apperr.ErrValidation
	}

	if _, ok, err := s.Store.FindUserByFirebaseID(ctx, in.FirebaseID); err != nil {
		return nil, err
	} else if !ok {
		return nil, apperr.NotFound("User")
	}

	u, ok, err := s.Store.IncrementCartLine(ctx, in.FirebaseID, in.MenuID, in.Quantity)
	if err != nil {
		return nil, err
	}

	line := entity.CartLine{
		MenuID:   in.MenuID,
		MenuName: in.MenuName,
		Price:    in.Price,
		Quantity: in.Quantity,
	}

	if !ok {
		u, ok, err = s.Store.PushCartLine(ctx, in.FirebaseID, in.RestaurantID, line)
		if err != nil {
			return nil, err
		}
	}

	if !ok {
		group := entity.CartGroup{
			CartID:         utils.NewUID(),
			RestaurantID:   in.RestaurantID,
			RestaurantName: in.RestaurantName,
			MenuList:       []entity.CartLine{line},
		}
		u, ok, err = s.Store.PushCartGroup(ctx, in.FirebaseID, group)
		if err != nil {
			return nil, err
		}
		if !ok {
			// user was deleted between the lookup and the push
			return nil, apperr.NotFound("User")
		}
	}

	logger.Log.Debug("added to cart",
		zap.String("firebaseId", in.FirebaseID),
		zap.String("menuId", in.MenuID),
		zap.Int("quantity", in.Quantity))

	return u.Cart, nil
}

// RemoveLine pulls one menu line out of one cart group.
func (s *CartService) RemoveLine(ctx context.Context, firebaseID, cartID, menuID string) ([]entity.CartGroup, error) {
	if firebaseID == "" || cartID == "" || menuID == "" {
		return nil, apperr.ErrValidation
	}
	u, ok, err := s.Store.PullCartLine(ctx, firebaseID, cartID, menuID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Menu")
	}
	return u.Cart, nil
}

// RemoveGroup pulls a whole restaurant group out of the cart.
func (s *CartService) RemoveGroup(ctx context.Context, firebaseID, cartID string) ([]entity.CartGroup, error) {
	if firebaseID == "" || cartID == "" {
		return nil, apperr.ErrValidation
	}
	u, ok, err := s.Store.PullCartGroup(ctx, firebaseID, cartID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Cart")
	}
	return u.Cart, nil
}
