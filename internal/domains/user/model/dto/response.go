package dto

import (
	"concierge/internal/domains/user/model"
	"concierge/shared"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/timezone"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Level        string  `json:"level"`
	FullName     *string `json:"full_name,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
	IsVerified   bool    `json:"is_verified"`
	Active       bool    `json:"active"`
	LastLogin    string  `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	*r = UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Level:        user.Level,
		FullName:     user.FullName,
		ProfileImage: user.ProfileImage,
		IsVerified:   user.IsVerified,
		Active:       user.Active,
	}

	if user.LastLogin != nil {
		r.LastLogin = timezone.Format(*user.LastLogin, constant.DateFormat)
	}

	r.Metadata.FromModel(user.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(users []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Users = make([]UserResponse, 0, len(users))

	for _, user := range users {
		var res UserResponse
		res.FromModel(user)
		r.Users = append(r.Users, res)
	}
}
