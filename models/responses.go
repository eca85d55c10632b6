package models

// AuthResponse is returned by register and login: the account (without any
// credential material) together with the signed bearer token the client
// presents on subsequent requests.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// UserResponse wraps a single account representation.
type UserResponse struct {
	User User `json:"user"`
}

// RecipeListResponse wraps the recipe listing.
type RecipeListResponse struct {
	Recipes []Recipe `json:"recipes"`
}

// ErrorResponse is the uniform JSON error body. Every failed request returns
// a human-readable message here and nothing else: no stack traces, no
// driver errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a plain informational body (logout, health).
type MessageResponse struct {
	Message string `json:"message"`
}
