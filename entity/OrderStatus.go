package entity

// Order statuses. A fresh order always starts in the kitchen.
const (
	StatusInKitchen      = "In the kitchen"
	StatusOutForDelivery = "Out for delivery"
	StatusDelivered      = "Delivered"
	StatusCancelled      = "Cancelled"
)

var orderTransitions = map[string][]string{
	StatusInKitchen:      {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
