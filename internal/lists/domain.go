package lists

import "time"

// List is a named bundle of dog-breed codes and the image URLs picked for
// them, owned by exactly one user. JSON field names follow the client
// contract established by the original API.
type List struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Codes     []string  `json:"codes"`
	ImageURLs []string  `json:"imageUrls"`
	OwnerID   string    `json:"user_id"`
	CreatedAt time.Time `json:"createdAt"`
}

// SaveListRequest is the payload for POST /api/saveList.
type SaveListRequest struct {
	Name      string   `json:"name" validate:"required"`
	Codes     []string `json:"codes" validate:"required,min=1"`
	ImageURLs []string `json:"imageUrls" validate:"required,min=1"`
}

// SaveListResponse acknowledges a saved list.
type SaveListResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// UpdateListRequest is the payload for PUT /api/updateList/{id}. Nil fields
// were absent from the request and stay untouched.
type UpdateListRequest struct {
	Name      *string   `json:"name,omitempty"`
	Codes     *[]string `json:"codes,omitempty"`
	ImageURLs *[]string `json:"imageUrls,omitempty"`
}
