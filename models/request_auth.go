package models

import "errors"

// RegisterRequest is the JSON body accepted by POST /api/auth/register.
// All fields are required; username and email must be globally unique
// (enforced by unique indexes at the store layer).
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// Validate checks that every required registration field is present.
// The returned error message is safe to surface to the client verbatim.
func (r RegisterRequest) Validate() error {
	switch {
	case r.Username == "":
		return errors.New("username is required")
	case r.Email == "":
		return errors.New("email is required")
	case r.Password == "":
		return errors.New("password is required")
	case r.FirstName == "":
		return errors.New("firstName is required")
	case r.LastName == "":
		return errors.New("lastName is required")
	}
	return nil
}

// User converts the request into a User document ready for hashing and
// persistence. The Password field is carried over as-is and must be
// replaced with its bcrypt hash before any store write.
func (r RegisterRequest) User() User {
	return User{
		Username:  r.Username,
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

// LoginRequest is the JSON body accepted by POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that both credentials are present.
func (r LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}
