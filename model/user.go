package model

import "time"

// UserEntity represents the user table entity
type UserEntity struct {
	ID           uint64     `db:"id" json:"id"`
	FirstName    string     `db:"first_name" json:"firstname"`
	LastName     string     `db:"last_name" json:"lastname"`
	Email        string     `db:"email" json:"email"`
	Mobile       string     `db:"mobile" json:"mobile"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         string     `db:"role" json:"role"`
	Premium      bool       `db:"premium" json:"premium"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID     uint64
	Email  string
	Mobile string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Role            string `json:"role" validate:"required,oneof=buyer seller"`
	FirstName       string `json:"firstname" validate:"required,max=80"`
	LastName        string `json:"lastname" validate:"required,max=80"`
	Email           string `json:"email" validate:"required,email,max=120"`
	Mobile          string `json:"mobile" validate:"required,max=20"`
	Password        string `json:"password" validate:"required,min=6"`
	IsPremiumSeller bool   `json:"isPremiumSeller"`
}

// LoginRequest for user login (accepts email or mobile)
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"` // email or mobile
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Role    string `json:"role"`
	UserID  uint64 `json:"user_id"`
	Token   string `json:"token"`
}

type RegisterResponse struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type LogoutResponse struct {
	Message  string `json:"message"`
	LoggedIn bool   `json:"logged_in"`
}

// Identity is the read-only view of a user handed to other components.
type Identity struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Premium   bool   `json:"premium"`
}

type FirstNameResponse struct {
	FirstName string `json:"firstName"`
}
