package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "s3cret",
		FirstName: "Alice",
		LastName:  "Martin",
	}
	require.NoError(t, valid.Validate())

	for _, mutate := range []func(*RegisterRequest){
		func(r *RegisterRequest) { r.Username = "" },
		func(r *RegisterRequest) { r.Email = "" },
		func(r *RegisterRequest) { r.Password = "" },
		func(r *RegisterRequest) { r.FirstName = "" },
		func(r *RegisterRequest) { r.LastName = "" },
	} {
		req := valid
		mutate(&req)
		assert.Error(t, req.Validate())
	}
}

func TestRegisterRequest_User(t *testing.T) {
	req := RegisterRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "s3cret",
		FirstName: "Alice",
		LastName:  "Martin",
		Phone:     "0601020304",
		Address:   "12 rue des Lilas",
	}

	user := req.User()

	assert.Equal(t, req.Username, user.Username)
	assert.Equal(t, req.Email, user.Email)
	assert.Equal(t, req.Address, user.Address)
	assert.True(t, user.ID.IsZero(), "identifier is assigned by the store")
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, LoginRequest{Email: "a@b.c", Password: "x"}.Validate())
	assert.Error(t, LoginRequest{Email: "a@b.c"}.Validate())
	assert.Error(t, LoginRequest{Password: "x"}.Validate())
}
