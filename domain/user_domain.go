package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "registration successful"
	MessageSuccessLogin    = "login successful"
	MessageSuccessGetMe    = "success get current user"

	MessageFailedRegister = "failed to register"
	MessageFailedLogin    = "failed to login"
	MessageFailedGetMe    = "failed to get current user"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrRoleNotFound       = errors.New("unknown role")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=5"`
		RoleName string `json:"roleName" validate:"required"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	// AuthResponse is the wire shape the mobile client binds to. The field
	// names poruka/uloga are part of the published contract.
	AuthResponse struct {
		Message  string `json:"poruka"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"uloga"`
	}

	// SessionDescriptor is returned alongside AuthResponse so the client can
	// persist its logged-in state.
	SessionDescriptor struct {
		UserID   string `json:"user_id"`
		Username string `json:"username"`
		Role     string `json:"role"`
		Token    string `json:"token"`
	}

	MeResponse struct {
		UserID   string `json:"user_id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}
)
