package domain

import "time"

// Product is a listing published by a seller. OwnerID is fixed at creation
// from the authenticated identity and is never reassigned through the API.
type Product struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"usuario_id"`
	Name        string    `json:"nombre_producto"`
	Description string    `json:"descripcion"`
	ImageURL    string    `json:"imagen"`
	Price       float64   `json:"precio"`
	Stock       int       `json:"stock"`
	Sold        bool      `json:"vendido"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
