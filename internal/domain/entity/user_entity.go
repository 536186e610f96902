package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the access role attached to a user record.
type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

// User is the aggregate root for the user directory.
// Email is always stored lowercase; a unique index on it is the
// authoritative uniqueness guard.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Age       *int               `bson:"age,omitempty" json:"age,omitempty"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	Role      Role               `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FullName derives the display name from the stored name parts.
// It is computed at response-shaping time and never persisted.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserInfo is the record shape returned to clients. It carries the derived
// full name and nothing from the raw store document beyond these fields.
type UserInfo struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Age       *int      `json:"age,omitempty"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// Info shapes the user for API responses.
func (u *User) Info() UserInfo {
	return UserInfo{
		ID:        u.ID.Hex(),
		FullName:  u.FullName(),
		Email:     u.Email,
		Age:       u.Age,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// UserSummary is the minimal shape returned after a deletion.
type UserSummary struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Summary shapes the user for deletion responses.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID.Hex(), FullName: u.FullName(), Email: u.Email}
}
