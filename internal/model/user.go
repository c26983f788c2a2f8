package model

import "time"

// User represents a user in the database. PasswordHash is the Argon2id
// digest of the account password; the plaintext is never persisted.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	GroupID      int64
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse represents a successful login response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateUserRequest represents an admin creating a user account. No
// password is supplied: the service generates an initial one and mails it
// to the new user.
type CreateUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	GroupID   int64  `json:"groupId"`
	IsAdmin   bool   `json:"isAdmin"`
}

// UpdateUserRequest represents a user profile update. A non-empty Password
// resets the credential.
type UpdateUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	GroupID   int64  `json:"groupId"`
	IsAdmin   bool   `json:"isAdmin"`
	Password  string `json:"password,omitempty"`
}

// UserResponse represents user data safe for API responses (no credential).
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	GroupID   int64     `json:"groupId"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse strips credential material from a user record.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		GroupID:   u.GroupID,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}
