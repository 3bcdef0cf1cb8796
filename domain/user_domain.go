package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "Registration successful. Please verify your email."
	MessageSuccessVerify   = "Account verified successfully!"
	MessageSuccessLogout   = "Logged out"

	MessageFailedRegister = "Internal server error during registration"
	MessageFailedVerify   = "Verification failed"
	MessageFailedLogin    = "Login failed"
	MessageFailedLogout   = "Logout failed"
	MessageFailedSession  = "Session check failed"

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCode        = errors.New("invalid verification code or email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnverified         = errors.New("email not verified")
)

type (
	RegisterRequest struct {
		FullName string `json:"fullName" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	VerifyRequest struct {
		Email string `json:"email" validate:"required,email"`
		Code  string `json:"code" validate:"required,len=6,numeric"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	// UserProjection is the minimal view returned after login; it never
	// carries the password hash.
	UserProjection struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Role string `json:"role"`
	}

	LoginResponse struct {
		Message string         `json:"message"`
		User    UserProjection `json:"user"`
	}

	MeResponse struct {
		UserID string `json:"userId"`
		Role   string `json:"role"`
	}
)
