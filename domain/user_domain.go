package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetDetailUser  = "user detail retrieved successfully"
	MessageSuccessUpdateUser     = "user updated successfully"
	MessageSuccessChangePassword = "password changed successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetDetailUser  = "failed to get user detail"
	MessageFailedUpdateUser     = "failed to update user"
	MessageFailedChangePassword = "failed to change password"

	ErrEmailAlreadyExists = fmt.Errorf("%w: email already in use", ErrConflict)
	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrWrongPassword      = fmt.Errorf("%w: current password does not match", ErrInvalidCredentials)
	ErrHashPassword       = errors.New("failed to hash password")
)

type (
	UserRegisterRequest struct {
		Email          string `json:"email" validate:"required,email"`
		Password       string `json:"password" validate:"required,password"`
		Nickname       string `json:"nickname" validate:"required,max=50"`
		DefaultStyleID string `json:"default_style_id" validate:"omitempty,max=20"`
	}

	UserRegisterResponse struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		Nickname string `json:"nickname"`
	}

	UserLoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	UserLoginResponse struct {
		Token    string `json:"token"`
		Nickname string `json:"nickname"`
	}

	UserResponse struct {
		ID               string    `json:"id"`
		Email            string    `json:"email"`
		Nickname         string    `json:"nickname"`
		DefaultStyleID   string    `json:"default_style_id"`
		LocationEnabled  bool      `json:"location_enabled"`
		ReviewVisibility bool      `json:"review_visibility"`
		CreatedAt        time.Time `json:"created_at"`
	}

	UpdateUserRequest struct {
		Nickname         string `json:"nickname" validate:"omitempty,max=50"`
		DefaultStyleID   string `json:"default_style_id" validate:"omitempty,max=20"`
		LocationEnabled  *bool  `json:"location_enabled"`
		ReviewVisibility *bool  `json:"review_visibility"`
	}

	ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,password"`
	}
)
