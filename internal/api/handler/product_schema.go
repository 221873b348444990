package handler

// productRequest is shared by create and update. The owner never comes from
// the payload; it is always the authenticated actor.
type productRequest struct {
	Name        string  `json:"nombre_producto" validate:"required"`
	Description string  `json:"descripcion"`
	ImageURL    string  `json:"imagen"`
	Price       float64 `json:"precio" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Sold        bool    `json:"vendido"`
}
