package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/syafiqfadli/food-ordering-app-server/entity"
	"github.com/syafiqfadli/food-ordering-app-server/repository"
	"github.com/syafiqfadli/food-ordering-app-server/services"
)

type envelope struct {
	IsSuccess bool               `json:"isSuccess"`
	Message   string             `json:"message"`
	Cart      []entity.CartGroup `json:"cart"`
	Order     *entity.Order      `json:"order"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	err := store.CreateUser(context.Background(), &entity.User{
		FirebaseID: "fb-1",
		Email:      "aiman@example.com",
		Name:       "Aiman",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	cartCtrl := NewCartController(services.NewCartService(store))
	orderCtrl := NewOrderController(services.NewOrderService(store))

	r := gin.New()
	r.PATCH("/user/add-to-cart", cartCtrl.AddToCart)
	r.PATCH("/user/checkout-order", orderCtrl.Checkout)
	r.DELETE("/user/cart", cartCtrl.RemoveCart)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return w, env
}

func addBody() map[string]any {
	return map[string]any{
		"firebaseId":     "fb-1",
		"restaurantId":   "R1",
		"restaurantName": "Nasi Corner",
		"menuId":         "M1",
		"menuName":       "Nasi Lemak",
		"price":          12,
		"quantity":       1,
	}
}

func TestAddToCartMissingFieldIs400(t *testing.T) {
	r := newTestRouter(t)
	body := addBody()
	delete(body, "menuId")

	w, env := do(t, r, http.MethodPatch, "/user/add-to-cart", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if env.IsSuccess {
		t.Fatal("expected isSuccess=false")
	}
	if env.Message == "" {
		t.Fatal("expected an error message")
	}
}

func TestAddToCartReturnsUpdatedCart(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodPatch, "/user/add-to-cart", addBody())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !env.IsSuccess {
		t.Fatalf("expected isSuccess=true, got %+v", env)
	}
	if len(env.Cart) != 1 || len(env.Cart[0].MenuList) != 1 {
		t.Fatalf("unexpected cart payload: %+v", env.Cart)
	}
}

func TestCheckoutUnknownCartIs404(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodPatch, "/user/checkout-order", map[string]any{
		"firebaseId": "fb-1",
		"cartId":     "nope",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if env.IsSuccess || env.Message != "Cart not found." {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestCheckoutHappyPath(t *testing.T) {
	r := newTestRouter(t)

	_, env := do(t, r, http.MethodPatch, "/user/add-to-cart", addBody())
	cartID := env.Cart[0].CartID

	w, env := do(t, r, http.MethodPatch, "/user/checkout-order", map[string]any{
		"firebaseId": "fb-1",
		"cartId":     cartID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if env.Order == nil || env.Order.Status != entity.StatusInKitchen {
		t.Fatalf("unexpected order payload: %+v", env.Order)
	}
}

func TestRemoveCartTwice(t *testing.T) {
	r := newTestRouter(t)

	_, env := do(t, r, http.MethodPatch, "/user/add-to-cart", addBody())
	cartID := env.Cart[0].CartID

	body := map[string]any{"firebaseId": "fb-1", "cartId": cartID}
	if w, _ := do(t, r, http.MethodDelete, "/user/cart", body); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w, env := do(t, r, http.MethodDelete, "/user/cart", body)
	if w.Code != http.StatusNotFound || env.Message != "Cart not found." {
		t.Fatalf("expected Cart not found, got %d %+v", w.Code, env)
	}
}
