package dto

import (
	"github.com/google/uuid"

	"innkeep/internal/domains/user/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

type CreateUserRequest struct {
	Username string  `json:"username"       validate:"required,max=50"`
	Email    string  `json:"email"          validate:"required,email"`
	Password string  `json:"password"       validate:"required,min=8"`
	Role     string  `json:"role"           validate:"omitempty,oneof=admin staff guest"`
	Bio      *string `json:"bio,omitempty"  validate:"omitempty,max=500"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleGuest
	}

	return model.User{
		ID:       uuid.NewString(),
		Username: r.Username,
		Email:    r.Email,
		Password: hashedPassword,
		Role:     role,
		Bio:      r.Bio,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Bio       *string `json:"bio,omitempty"`
	LastLogin *string `json:"last_login,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Email = model.Email
	r.Role = model.Role
	r.Bio = model.Bio
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	Role   *string `db:"role"   json:"role,omitempty"   validate:"omitempty,oneof=admin staff guest"`
	Bio    *string `db:"bio"    json:"bio,omitempty"    validate:"omitempty,max=500"`
	Active *bool   `db:"active" json:"active,omitempty"`
}

type UpdateProfileRequest struct {
	Bio *string `db:"bio" json:"bio,omitempty" validate:"omitempty,max=500"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
