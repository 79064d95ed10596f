package profile

import (
	"time"

	"coworking-booking/internal/domain/user"

	"github.com/google/uuid"
)

type Profile struct {
	id                uuid.UUID
	email             user.Email
	fullName          string
	companyName       *string
	unit              *Unit
	bio               *string
	photoURL          *string
	phone             *string
	monthlyHoursQuota *float64
	isAdmin           bool
	isApproved        bool
	createdAt         time.Time
	updatedAt         time.Time
}

// Details are the member-editable fields.
type Details struct {
	FullName    string
	CompanyName *string
	Unit        *string
	Bio         *string
	PhotoURL    *string
	Phone       *string
}

// NewProfile registers a member. New profiles wait for admin approval.
func NewProfile(email user.Email, d Details, now time.Time) (*Profile, error) {
	p := &Profile{
		id:        uuid.New(),
		email:     email,
		createdAt: now,
	}
	if err := p.apply(d); err != nil {
		return nil, err
	}
	p.updatedAt = now
	return p, nil
}

func ReconstructProfile(id uuid.UUID, email string, fullName string, companyName, unit, bio, photoURL, phone *string, quota *float64, isAdmin, isApproved bool, createdAt, updatedAt time.Time) *Profile {
	var u *Unit
	if unit != nil {
		u = &Unit{value: *unit}
	}
	// stored emails were validated on the way in
	e, _ := user.NewEmail(email)
	return &Profile{
		id:                id,
		email:             e,
		fullName:          fullName,
		companyName:       companyName,
		unit:              u,
		bio:               bio,
		photoURL:          photoURL,
		phone:             phone,
		monthlyHoursQuota: quota,
		isAdmin:           isAdmin,
		isApproved:        isApproved,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// UpdateDetails replaces the member-editable fields.
func (p *Profile) UpdateDetails(d Details, now time.Time) error {
	if err := p.apply(d); err != nil {
		return err
	}
	p.updatedAt = now
	return nil
}

func (p *Profile) apply(d Details) error {
	fullName, err := NewFullName(d.FullName)
	if err != nil {
		return err
	}
	company, err := optionalText(d.CompanyName, MaxCompanyNameLength, ErrCompanyTooLong)
	if err != nil {
		return err
	}
	var unit *Unit
	if d.Unit != nil && *d.Unit != "" {
		u, uerr := NewUnit(*d.Unit)
		if uerr != nil {
			return uerr
		}
		unit = &u
	}
	bio, err := optionalText(d.Bio, MaxBioLength, ErrBioTooLong)
	if err != nil {
		return err
	}
	photoURL, err := optionalText(d.PhotoURL, MaxPhotoURLLength, ErrPhotoURLTooLong)
	if err != nil {
		return err
	}
	phone, err := optionalText(d.Phone, MaxPhoneLength, ErrPhoneTooLong)
	if err != nil {
		return err
	}

	p.fullName = fullName
	p.companyName = company
	p.unit = unit
	p.bio = bio
	p.photoURL = photoURL
	p.phone = phone
	return nil
}

func (p *Profile) SetQuota(hours *float64, now time.Time) error {
	if hours != nil && *hours <= 0 {
		return ErrInvalidQuota
	}
	p.monthlyHoursQuota = hours
	p.updatedAt = now
	return nil
}

func (p *Profile) SetApproved(approved bool, now time.Time) {
	p.isApproved = approved
	p.updatedAt = now
}

func (p *Profile) SetAdmin(admin bool, now time.Time) {
	p.isAdmin = admin
	p.updatedAt = now
}

func (p *Profile) ID() uuid.UUID               { return p.id }
func (p *Profile) Email() user.Email           { return p.email }
func (p *Profile) FullName() string            { return p.fullName }
func (p *Profile) CompanyName() *string        { return p.companyName }
func (p *Profile) Bio() *string                { return p.bio }
func (p *Profile) PhotoURL() *string           { return p.photoURL }
func (p *Profile) Phone() *string              { return p.phone }
func (p *Profile) MonthlyHoursQuota() *float64 { return p.monthlyHoursQuota }
func (p *Profile) IsAdmin() bool               { return p.isAdmin }
func (p *Profile) IsApproved() bool            { return p.isApproved }
func (p *Profile) CreatedAt() time.Time        { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time        { return p.updatedAt }
func (p *Profile) Role() user.Role             { return user.RoleFor(p.isAdmin) }

func (p *Profile) Unit() *string {
	if p.unit == nil {
		return nil
	}
	v := p.unit.value
	return &v
}
