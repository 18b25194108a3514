package model

import "time"

// FullName is the two-part name clients send on registration.
type FullName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// User represents a stored identity record. PasswordHash holds the bcrypt
// digest and is never serialized or logged.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	FullName FullName `json:"fullname"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents user data safe for API responses. The password
// digest has no field here on purpose.
type UserResponse struct {
	ID       int64    `json:"id"`
	FullName FullName `json:"fullname"`
	Email    string   `json:"email"`
}

// AuthResponse represents an authentication response with a signed token
// and the user summary.
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}
