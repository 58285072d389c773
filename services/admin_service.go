package services

import (
	"context"

	"github.com/syafiqfadli/food-ordering-app-server/entity"
	"github.com/syafiqfadli/food-ordering-app-server/pkg/apperr"
	"github.com/syafiqfadli/food-ordering-app-server/utils"
)

type AdminService struct {
	Store AdminStore
}

func NewAdminService(s AdminStore) *AdminService { return &AdminService{Store: s} }

type CreateAdminIn struct {
	FirebaseID string `json:"firebaseId" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

type UpdateAdminIn struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name"`
	NewEmail string `json:"newEmail"`
}

func (s *AdminService) Get(ctx context.Context, email string) (*entity.Admin, error) {
	if email == "" {
		return nil, apperr.ErrValidation
	}
	a, ok, err := s.Store.FindAdminByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Admin")
	}
	return a, nil
}

func (s *AdminService) Create(ctx context.Context, in *CreateAdminIn) (*entity.Admin, error) {
	if in.FirebaseID == "" || in.Email == "" || in.Name == "" {
		return nil, apperr.ErrValidation
	}
	a := &entity.Admin{
		FirebaseID: in.FirebaseID,
		Email:      in.Email,
		Name:       in.Name,
		Restaurant: []entity.Restaurant{},
	}
	if err := s.Store.CreateAdmin(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AdminService) Update(ctx context.Context, in *UpdateAdminIn) (*entity.Admin, error) {
	if in.Email == "" {
		return nil, apperr.ErrValidation
	}
	set := map[string]any{}
	if in.Name != "" {
		set["name"] = in.Name
	}
	if in.NewEmail != "" {
		set["email"] = in.NewEmail
	}
	if len(set) == 0 {
		return nil, apperr.ErrValidation
	}
	a, ok, err := s.Store.UpdateAdmin(ctx, in.Email, set)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Admin")
	}
	return a, nil
}

func (s *AdminService) Delete(ctx context.Context, email string) error {
	if email == "" {
		return apperr.ErrValidation
	}
	ok, err := s.Store.DeleteAdminByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Admin")
	}
	return nil
}

func (s *AdminService) Restaurants(ctx context.Context, email string) ([]entity.Restaurant, error) {
	if email == "" {
		return nil, apperr.ErrValidation
	}
	rests, ok, err := s.Store.AdminRestaurants(ctx, email)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Admin")
	}
	return rests, nil
}

// AddRestaurant registers a restaurant under the admin with a fresh id.
func (s *AdminService) AddRestaurant(ctx context.Context, email, restaurantName string) (*entity.Restaurant, error) {
	if email == "" || restaurantName == "" {
		return nil, apperr.ErrValidation
	}
	rest := entity.Restaurant{
		RestaurantID:   utils.NewUID(),
		RestaurantName: restaurantName,
		Menu:           []entity.Menu{},
	}
	_, ok, err := s.Store.PushRestaurant(ctx, email, rest)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Admin")
	}
	return &rest, nil
}

type AddMenuIn struct {
	RestaurantID string `json:"restaurantId" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Price        int64  `json:"price" binding:"required"`
}

// AddMenu pushes a menu item into the positional restaurant entry.
func (s *AdminService) AddMenu(ctx context.Context, in *AddMenuIn) (*entity.Menu, error) {
	if in.RestaurantID == "" || in.Title == "" || in.Description == "" || in.Price == 0 {
		return nil, apperr.ErrValidation
	}
	m := entity.Menu{
		MenuID:      utils.NewUID(),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
	}
	_, ok, err := s.Store.PushMenu(ctx, in.RestaurantID, m)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Restaurant")
	}
	return &m, nil
}
