package handler

type addCartItemRequest struct {
	ProductID int64 `json:"producto_id" validate:"required,gt=0"`
	Quantity  int   `json:"cantidad" validate:"required,gte=1"`
}
