package transport

import "github.com/mcastros/clothing_store/internal/models"

type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Username    string `json:"username"`
	NewPassword string `json:"new_password"`
	NewRole     string `json:"new_role"`
}

type TokenResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type RegisterProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

type UpdateProductRequest struct {
	ProductID   uint    `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

type DeleteProductRequest struct {
	ProductID uint `json:"product_id"`
}

type ProductsResponse struct {
	Message  string           `json:"message"`
	Products []models.Product `json:"products"`
}

type GroupedProductsResponse struct {
	Message  string                      `json:"message"`
	Products map[string][]models.Product `json:"products"`
}

type SearchResponse struct {
	Data []models.Product `json:"data"`
	Meta SearchMeta       `json:"meta"`
}

type SearchMeta struct {
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}
