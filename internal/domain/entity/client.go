package entity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Client is the profile record of a person using the feed.
type Client struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    *string   `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Nickname  string    `bson:"nickname" json:"nickname"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// AuthUser is the signed-in identity carried by an access token.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// Claims are the JWT claims issued for a signed-in user.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
