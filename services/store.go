package services

import (
	"context"

	"github.com/syafiqfadli/food-ordering-app-server/entity"
)

// Store interfaces consumed by the services. The bool results report whether
// the conditional filter matched; repository.MongoStore and
// repository.MemoryStore implement all of them.

type UserStore interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	FindUserByFirebaseID(ctx context.Context, firebaseID string) (*entity.User, bool, error)
	CreateUser(ctx context.Context, u *entity.User) error
	DeleteUserByEmail(ctx context.Context, email string) (bool, error)
	UserCart(ctx context.Context, firebaseID string) ([]entity.CartGroup, bool, error)
	UserOrders(ctx context.Context, firebaseID string) ([]entity.Order, bool, error)
}

type CartStore interface {
	FindUserByFirebaseID(ctx context.Context, firebaseID string) (*entity.User, bool, error)
	IncrementCartLine(ctx context.Context, firebaseID, menuID string, qty int) (*entity.User, bool, error)
	PushCartLine(ctx context.Context, firebaseID, restaurantID string, line entity.CartLine) (*entity.User, bool, error)
	PushCartGroup(ctx context.Context, firebaseID string, group entity.CartGroup) (*entity.User, bool, error)
	PullCartLine(ctx context.Context, firebaseID, cartID, menuID string) (*entity.User, bool, error)
	PullCartGroup(ctx context.Context, firebaseID, cartID string) (*entity.User, bool, error)
}

type OrderStore interface {
	CartGroupSnapshot(ctx context.Context, firebaseID, cartID string) (*entity.CartGroup, bool, error)
	CommitCheckout(ctx context.Context, firebaseID, cartID string, order entity.Order) (*entity.User, bool, error)
	UserOrders(ctx context.Context, firebaseID string) ([]entity.Order, bool, error)
	AdvanceOrderStatus(ctx context.Context, orderID, from, to string) (bool, error)
	KitchenOrders(ctx context.Context, restaurantID string) ([]entity.KitchenOrder, error)
}

type AdminStore interface {
	FindAdminByEmail(ctx context.Context, email string) (*entity.Admin, bool, error)
	CreateAdmin(ctx context.Context, a *entity.Admin) error
	UpdateAdmin(ctx context.Context, email string, set map[string]any) (*entity.Admin, bool, error)
	DeleteAdminByEmail(ctx context.Context, email string) (bool, error)
	AdminRestaurants(ctx context.Context, email string) ([]entity.Restaurant, bool, error)
	PushRestaurant(ctx context.Context, email string, rest entity.Restaurant) (*entity.Admin, bool, error)
	PushMenu(ctx context.Context, restaurantID string, m entity.Menu) (*entity.Admin, bool, error)
}

type CatalogStore interface {
	ListRestaurants(ctx context.Context) ([]entity.Restaurant, error)
	RestaurantMenu(ctx context.Context, restaurantID string) (*entity.Restaurant, bool, error)
}
