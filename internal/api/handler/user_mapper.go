package handler

import (
	"github.com/opsdesk/business-ops/internal/core/domain"
	"github.com/opsdesk/business-ops/internal/core/ports"
)

func toCreateUserInput(req createUserRequest) (ports.CreateUserInput, error) {
	role, err := domain.ParseUserRole(req.Role)
	if err != nil {
		return ports.CreateUserInput{}, err
	}

	return ports.CreateUserInput{
		Name:        req.Name,
		Email:       req.Email,
		Role:        role,
		Phone:       req.Phone,
		Nationality: req.Nationality,
		Address:     req.Address,
		ConfigRoles: toConfigRoles(req.ConfigRoles),
	}, nil
}

func toUserUpdate(req updateUserRequest) (ports.UserUpdate, error) {
	upd := ports.UserUpdate{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Nationality: req.Nationality,
		Address:     req.Address,
		ConfigRoles: toConfigRoles(req.ConfigRoles),
	}

	if req.Role != nil {
		role, err := domain.ParseUserRole(*req.Role)
		if err != nil {
			return ports.UserUpdate{}, err
		}
		upd.Role = &role
	}
	return upd, nil
}

func toConfigRoles(roles []string) []domain.ConfigRole {
	if len(roles) == 0 {
		return nil
	}
	out := make([]domain.ConfigRole, len(roles))
	for i, r := range roles {
		out[i] = domain.ConfigRole(r)
	}
	return out
}
