package services

import (
	"context"

	"github.com/syafiqfadli/food-ordering-app-server/entity"
	"github.com/syafiqfadli/food-ordering-app-server/pkg/apperr"
)

type UserService struct {
	Store UserStore
}

func NewUserService(s UserStore) *UserService { return &UserService{Store: s} }

type CreateUserIn struct {
	FirebaseID string `json:"firebaseId" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Store.ListUsers(ctx)
}

func (s *UserService) Get(ctx context.Context, firebaseID string) (*entity.User, error) {
	if firebaseID == "" {
		return nil, apperr.ErrValidation
	}
	u, ok, err := s.Store.FindUserByFirebaseID(ctx, firebaseID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return u, nil
}

func (s *UserService) Create(ctx context.Context, in *CreateUserIn) error {
	if in.FirebaseID == "" || in.Email == "" || in.Name == "" {
		return apperr.ErrValidation
	}
	u := &entity.User{
		FirebaseID: in.FirebaseID,
		Email:      in.Email,
		Name:       in.Name,
		Cart:       []entity.CartGroup{},
		Order:      []entity.Order{},
		History:    []entity.Order{},
	}
	return s.Store.CreateUser(ctx, u)
}

func (s *UserService) Delete(ctx context.Context, email string) error {
	if email == "" {
		return apperr.ErrValidation
	}
	ok, err := s.Store.DeleteUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("User")
	}
	return nil
}

func (s *UserService) Cart(ctx context.Context, firebaseID string) ([]entity.CartGroup, error) {
	if firebaseID == "" {
		return nil, apperr.ErrValidation
	}
	cart, ok, err := s.Store.UserCart(ctx, firebaseID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return cart, nil
}
