package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/syafiqfadli/food-ordering-app-server/entity"
)

// MemoryStore implements the same match-and-mutate contract as MongoStore
// over in-process maps. One mutex stands in for the store's per-document
// write ordering. Used by tests and local development.
type MemoryStore struct {
	mu     sync.Mutex
	users  map[string]*entity.User  // by firebaseId
	admins map[string]*entity.Admin // by email
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[string]*entity.User),
		admins: make(map[string]*entity.Admin),
	}
}

// ----- users -----

func (s *MemoryStore) ListUsers(ctx context.Context) ([]entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]entity.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *copyUser(u))
	}
	return users, nil
}

func (s *MemoryStore) FindUserByFirebaseID(ctx context.Context, firebaseID string) (*entity.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[firebaseID]
	if !ok {
		return nil, false, nil
	}
	return copyUser(u), true, nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.FirebaseID]; ok {
		return errors.New("duplicate firebaseId")
	}
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return errors.New("duplicate email")
		}
	}
	s.users[u.FirebaseID] = copyUser(u)
	return nil
}

func (s *MemoryStore) DeleteUserByEmail(ctx context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, u := range s.users {
		if u.Email == email {
			delete(s.users, id)
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) UserCart(ctx context.Context, firebaseID string) ([]entity.CartGroup, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[firebaseID]
	if !ok {
		return nil, false, nil
	}
	return copyGroups(u.Cart), true, nil
}

func (s *MemoryStore) UserOrders(ctx context.Context, firebaseID string) ([]entity.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[firebaseID]
	if !ok {
		return nil, false, nil
	}
	return copyOrders(u.Order), true, nil
}

// ----- cart -----

func (s *MemoryStore) IncrementCartLine(ctx context.Context, firebaseID, menuID string, qty int) (*entity.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[firebaseID]
	if !ok {
		return nil, false, nil
	}
	for gi := range u.Cart {
		for li := range u.Cart[gi].MenuList {
			if u.Cart[gi].MenuList[li].MenuID == menuID {
				u.Cart[gi].MenuList[li].Quantity += qty
				return copyUser(u), true, nil
			}
		}
	}
	return nil, false, nil
}

func (s *MemoryStore) PushCartLine(ctx context.Context, firebaseID, restaurantID string, line entity.CartLine) (*entity.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[firebaseID]
	if !ok {
		return nil, false, nil
	}
	for gi := range u.Cart {
		if u.Cart[gi].RestaurantID == restaurantID {
			u.Cart[gi].MenuList = append(u.Cart[gi].MenuList, line)
			return copyUser(u), true, nil
		}
	}
	return nil, false, nil
}

func (s *MemoryStore) PushCartGroup(ctx context.Context, firebaseID string, group entity.CartGroup) (*entity.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[firebaseID]
	if !ok {
		return nil, false, nil
	}
	u.Cart = append(u.Cart, *copyGroup(&group))
	return copyUser(u), true, nil
}

func (s *MemoryStore) PullCartLine(ctx context.Context, firebaseID, cartID, menuID string) (*entity.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[firebaseID]
	if !ok {
		return nil, false, nil
	}
	for gi := range u.Cart {
		if u.Cart[gi].CartID != cartID {
			continue
		}
		for li := range u.Cart[gi].MenuList {
			if u.Cart[gi].MenuList[li].MenuID == menuID {
				u.Cart[gi].MenuList = append(u.Cart[gi].MenuList[:li], u.Cart[gi].MenuList[li+1:]...)
				return copyUser(u), true, nil
			}
		}
	}
	return nil, false, nil
}

func (s *MemoryStore) PullCartGroup(ctx context.Context, firebaseID, cartID string) (*entity.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[firebaseID]
	if !ok {
		return nil, false, nil
	}
	for gi := range u.Cart {
		if u.Cart[gi].CartID == cartID {
			u.Cart = append(u.Cart[:gi], u.Cart[gi+1:]...)
			return copyUser(u), true, nil
		}
	}
	return nil, false, nil
}

// ----- checkout / orders -----

func (s *MemoryStore) CartGroupSnapshot(ctx context.Context, firebaseID, cartID string) (*entity.CartGroup, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[firebaseID]
	if !ok {
		return nil, false, nil
	}
	for gi := range u.Cart {
		if u.Cart[gi].CartID == cartID {
			return copyGroup(&u.Cart[gi]), true, nil
		}
	}
	return nil, false, nil
}

func (s *MemoryStore) CommitCheckout(ctx context.Context, firebaseID, cartID string, order entity.Order) (*entity.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[firebaseID]
	if !ok {
		return nil, false, nil
	}
	for gi := range u.Cart {
		if u.Cart[gi].CartID == cartID {
			// append + remove under one lock, like the single document update
			order.OrderList = copyLines(order.OrderList)
			u.Order = append(u.Order, order)
			u.Cart = append(u.Cart[:gi], u.Cart[gi+1:]...)
			return copyUser(u), true, nil
		}
	}
	return nil, false, nil
}

func (s *MemoryStore) AdvanceOrderStatus(ctx context.Context, orderID, from, to string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		for oi := range u.Order {
			if u.Order[oi].OrderID == orderID && u.Order[oi].Status == from {
				u.Order[oi].Status = to
				return true, nil
			}
		}
	}
	return false, nil
}

func (s *MemoryStore) KitchenOrders(ctx context.Context, restaurantID string) ([]entity.KitchenOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []entity.KitchenOrder
	for _, u := range s.users {
		for oi := range u.Order {
			if u.Order[oi].RestaurantID == restaurantID {
				o := u.Order[oi]
				o.OrderList = copyLines(o.OrderList)
				rows = append(rows, entity.KitchenOrder{FirebaseID: u.FirebaseID, Order: o})
			}
		}
	}
	return rows, nil
}

// ----- admins / catalog -----

func (s *MemoryStore) FindAdminByEmail(ctx context.Context, email string) (*entity.Admin, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.admins[email]
	if !ok {
		return nil, false, nil
	}
	return copyAdmin(a), true, nil
}

func (s *MemoryStore) CreateAdmin(ctx context.Context, a *entity.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.admins[a.Email]; ok {
		return errors.New("duplicate email")
	}
	s.admins[a.Email] = copyAdmin(a)
	return nil
}

func (s *MemoryStore) UpdateAdmin(ctx context.Context, email string, set map[string]any) (*entity.Admin, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.admins[email]
	if !ok {
		return nil, false, nil
	}
	if v, ok := set["name"].(string); ok {
		a.Name = v
	}
	if v, ok := set["email"].(string); ok && v != email {
		a.Email = v
		delete(s.admins, email)
		s.admins[v] = a
	}
	return copyAdmin(a), true, nil
}

func (s *MemoryStore) DeleteAdminByEmail(ctx context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.admins[email]; !ok {
		return false, nil
	}
	delete(s.admins, email)
	return true, nil
}

func (s *MemoryStore) AdminRestaurants(ctx context.Context, email string) ([]entity.Restaurant, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.admins[email]
	if !ok {
		return nil, false, nil
	}
	return copyRestaurants(a.Restaurant), true, nil
}

func (s *MemoryStore) PushRestaurant(ctx context.Context, email string, rest entity.Restaurant) (*entity.Admin, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.admins[email]
	if !ok {
		return nil, false, nil
	}
	a.Restaurant = append(a.Restaurant, *copyRestaurant(&rest))
	return copyAdmin(a), true, nil
}

func (s *MemoryStore) PushMenu(ctx context.Context, restaurantID string, m entity.Menu) (*entity.Admin, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		for ri := range a.Restaurant {
			if a.Restaurant[ri].RestaurantID == restaurantID {
				a.Restaurant[ri].Menu = append(a.Restaurant[ri].Menu, m)
				return copyAdmin(a), true, nil
			}
		}
	}
	return nil, false, nil
}

func (s *MemoryStore) ListRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rests []entity.Restaurant
	for _, a := range s.admins {
		for ri := range a.Restaurant {
			rests = append(rests, entity.Restaurant{
				RestaurantID:   a.Restaurant[ri].RestaurantID,
				RestaurantName: a.Restaurant[ri].RestaurantName,
			})
		}
	}
	return rests, nil
}

func (s *MemoryStore) RestaurantMenu(ctx context.Context, restaurantID string) (*entity.Restaurant, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		for ri := range a.Restaurant {
			if a.Restaurant[ri].RestaurantID == restaurantID {
				return copyRestaurant(&a.Restaurant[ri]), true, nil
			}
		}
	}
	return nil, false, nil
}

// ----- deep copies; callers never share slices with the store -----

func copyUser(u *entity.User) *entity.User {
	out := *u
	out.Cart = copyGroups(u.Cart)
	out.Order = copyOrders(u.Order)
	out.History = copyOrders(u.History)
	return &out
}

func copyGroups(groups []entity.CartGroup) []entity.CartGroup {
	out := make([]entity.CartGroup, len(groups))
	for i := range groups {
		out[i] = *copyGroup(&groups[i])
	}
	return out
}

func copyGroup(g *entity.CartGroup) *entity.CartGroup {
	out := *g
	out.MenuList = copyLines(g.MenuList)
	return &out
}

func copyLines(lines []entity.CartLine) []entity.CartLine {
	out := make([]entity.CartLine, len(lines))
	copy(out, lines)
	return out
}

func copyOrders(orders []entity.Order) []entity.Order {
	out := make([]entity.Order, len(orders))
	for i := range orders {
		out[i] = orders[i]
		out[i].OrderList = copyLines(orders[i].OrderList)
	}
	return out
}

func copyAdmin(a *entity.Admin) *entity.Admin {
	out := *a
	out.Restaurant = copyRestaurants(a.Restaurant)
	return &out
}

func copyRestaurants(rests []entity.Restaurant) []entity.Restaurant {
	out := make([]entity.Restaurant, len(rests))
	for i := range rests {
		out[i] = *copyRestaurant(&rests[i])
	}
	return out
}

func copyRestaurant(r *entity.Restaurant) *entity.Restaurant {
	out := *r
	out.Menu = make([]entity.Menu, len(r.Menu))
	copy(out.Menu, r.Menu)
	return &out
}
