package handler

import "github.com/campuslife/activity-system/internal/core/domain"

// --- Request types ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=admin student"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createActivityRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date"        validate:"required"`
}

// updateActivityRequest carries a partial update: omitted or empty fields
// leave the stored value untouched.
type updateActivityRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// --- Response types ---

// Every response body carries at least a message field; data and token are
// populated per endpoint.

type registerResponse struct {
	Message string       `json:"message"`
	Data    *domain.User `json:"data"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type activityResponse struct {
	Message string           `json:"message"`
	Data    *domain.Activity `json:"data"`
}

type joinResponse struct {
	Message string `json:"message"`
}
