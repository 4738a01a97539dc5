package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the store-assigned unique identifier of the user.
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	// Username is the unique public handle of the user.
	// A unique index on the "users" collection enforces global uniqueness.
	Username string `json:"username" bson:"username"`

	// Email is the unique address used during login.
	// A unique index on the "users" collection enforces global uniqueness.
	Email string `json:"email" bson:"email"`

	// Password stores the bcrypt hash of the user's password.
	// This value MUST never contain plaintext and is never exposed via JSON.
	Password string `json:"-" bson:"password"`

	// FirstName is the given name of the user. Non-sensitive, may be shown in UI.
	FirstName string `json:"firstName" bson:"firstName"`

	// LastName is the family name of the user.
	LastName string `json:"lastName" bson:"lastName"`

	// Phone is the contact phone number shown to adopters.
	Phone string `json:"phone" bson:"phone"`

	// Address is the contact address shown to adopters.
	Address string `json:"address" bson:"address"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`

	// UpdatedAt is the timestamp of the last account modification.
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CollectionName returns the name of the document collection
// associated with the User model.
func (u User) CollectionName() string {
	return "users"
}

// Summary returns the public projection of the user embedded in
// authentication responses and expanded pet records.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}

// UserSummary is the owner projection attached to pet records and
// returned from the auth endpoints. It deliberately omits credential
// and address data.
type UserSummary struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username"`
	Email     string             `json:"email" bson:"email"`
	FirstName string             `json:"firstName" bson:"firstName"`
	LastName  string             `json:"lastName" bson:"lastName"`
	Phone     string             `json:"phone" bson:"phone"`
}
