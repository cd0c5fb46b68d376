package domain

import "context"

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type RegisterRequest struct {
	Name                 string `json:"name" form:"name" validate:"required,max=255"`
	LastName             string `json:"lastName" form:"lastName" validate:"required,max=255"`
	Email                string `json:"email" form:"email" validate:"required,email"`
	Phone                string `json:"phone" form:"phone" validate:"required,max=20"`
	Password             string `json:"password" form:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"passwordConfirmation" form:"passwordConfirmation" validate:"required,eqfield=Password"`

	// Image is an optional avatar upload.
	Image         []byte `json:"-" form:"-"`
	ImageFilename string `json:"-" form:"-"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

// Identity is the decoded payload of an identity token. It is read once
// and otherwise treated as opaque.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AccountAPI is the boundary to the remote account endpoints.
type AccountAPI interface {
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
}
