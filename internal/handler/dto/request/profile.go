package request

import "coworking-booking/internal/usecase/commands"

// UpdateProfileRequest is a partial update. An empty string clears an optional field.
type UpdateProfileRequest struct {
	FullName    *string `json:"full_name" binding:"omitempty,min=1,max=200"`
	CompanyName *string `json:"company_name" binding:"omitempty,max=200"`
	Unit        *string `json:"unit" binding:"omitempty,unit"`
	Bio         *string `json:"bio" binding:"omitempty,max=1000"`
	PhotoURL    *string `json:"photo_url" binding:"omitempty,max=500"`
	Phone       *string `json:"phone" binding:"omitempty,max=30"`
}

func (r *UpdateProfileRequest) ToCommand() commands.UpdateProfileRequest {
	return commands.UpdateProfileRequest{
		FullName:    r.FullName,
		CompanyName: r.CompanyName,
		Unit:        r.Unit,
		Bio:         r.Bio,
		PhotoURL:    r.PhotoURL,
		Phone:       r.Phone,
	}
}

type AdminUpdateProfileRequest struct {
	IsApproved        *bool    `json:"is_approved"`
	IsAdmin           *bool    `json:"is_admin"`
	MonthlyHoursQuota *float64 `json:"monthly_hours_quota" binding:"omitempty,gt=0,lte=744"`
	ResetQuota        bool     `json:"reset_quota"`
}

func (r *AdminUpdateProfileRequest) ToCommand() commands.AdminUpdateProfileRequest {
	return commands.AdminUpdateProfileRequest{
		IsApproved:        r.IsApproved,
		IsAdmin:           r.IsAdmin,
		MonthlyHoursQuota: r.MonthlyHoursQuota,
		ResetQuota:        r.ResetQuota,
	}
}

type DirectoryQuery struct {
	Search string `form:"q" binding:"omitempty,max=200"`
}
