package models

import (
	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin         Role = "admin"
	RoleAdministrator Role = "administrator"
	RoleNormalUser    Role = "normaluser"
)

// AdminUser is the profile the marketplace backend returns for the signed-in
// administrator. Field names follow the backend wire format.
type AdminUser struct {
	ID               string `json:"id,omitempty"`
	MongoID          string `json:"_id,omitempty"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Role             string `json:"role"`
	City             string `json:"city,omitempty"`
	Address          string `json:"address,omitempty"`
	Pin              string `json:"pin,omitempty"`
	BudgetRange      string `json:"budgetRange,omitempty"`
	PreferredBrand   string `json:"preferredBrand,omitempty"`
	FuelType         string `json:"fuelType,omitempty"`
	TransmissionType string `json:"transmissionType,omitempty"`
	IsEmailVerified  bool   `json:"is_email_verified,omitempty"`
	IsPhoneVerified  bool   `json:"is_phone_verified,omitempty"`
}

// Key returns the stable identifier for the user regardless of which id field
// the backend populated.
func (u AdminUser) Key() string {
	if u.ID != "" {
		return u.ID
	}
	return u.MongoID
}

// Session pairs the backend bearer credential with the identity it was issued
// for. A session is only considered valid while the user's role passes the
// admin predicate.
type Session struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}

// Claims is the gateway's own browser token. It carries the gateway session id,
// not the backend bearer token; the bearer credential never leaves the session
// store.
type Claims struct {
	SessionID string `json:"session_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the backend's answer to POST /auth/login.
type LoginResponse struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}
