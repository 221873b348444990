package domain

import "time"

// CartItem links a product to a buyer's cart. UserID is the cart owner; only
// that user (never an admin acting on their behalf) may remove the item.
type CartItem struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"usuario_id"`
	ProductID int64     `json:"producto_id"`
	Quantity  int       `json:"cantidad"`
	CreatedAt time.Time `json:"created_at"`
}
