package handler

import "github.com/opsdesk/business-ops/internal/core/domain"

type createUserRequest struct {
	Name        string   `json:"name"         validate:"required"`
	Email       string   `json:"email"        validate:"required,email"`
	Role        string   `json:"role"         validate:"required"`
	Phone       string   `json:"phone"`
	Nationality string   `json:"nationality"`
	Address     string   `json:"address"`
	ConfigRoles []string `json:"config_roles"`
}

// updateUserRequest uses pointers so absent fields are left untouched; an
// entirely empty body is rejected by the service.
type updateUserRequest struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Role        *string  `json:"role"`
	Phone       *string  `json:"phone"`
	Nationality *string  `json:"nationality"`
	Address     *string  `json:"address"`
	ConfigRoles []string `json:"config_roles"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type listUsersResponse struct {
	Data       []*domain.User     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
