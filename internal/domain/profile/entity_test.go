//go:build unit

package profile_test

import (
	"strings"
	"testing"
	"time"

	"coworking-booking/internal/domain/profile"
	"coworking-booking/internal/domain/user"
	"coworking-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewProfile(t *testing.T) {
	now := builder.At(2024, time.March, 1, 8, 0)
	email, err := user.NewEmail("member@example.com")
	require.NoError(t, err)

	t.Run("new members wait for approval", func(t *testing.T) {
		p, err := profile.NewProfile(email, profile.Details{
			FullName:    "  Maria Souza ",
			CompanyName: ptr("Acme"),
			Unit:        ptr("07"),
		}, now)
		require.NoError(t, err)

		assert.Equal(t, "Maria Souza", p.FullName())
		assert.Equal(t, "07", *p.Unit())
		assert.False(t, p.IsApproved())
		assert.False(t, p.IsAdmin())
		assert.Equal(t, user.RoleMember, p.Role())
		assert.Nil(t, p.MonthlyHoursQuota())
		assert.Equal(t, now, p.CreatedAt())
	})

	cases := []struct {
		name    string
		details profile.Details
		errIs   error
	}{
		{"blank name", profile.Details{FullName: " "}, profile.ErrEmptyFullName},
		{"name too long", profile.Details{FullName: strings.Repeat("n", profile.MaxFullNameLength+1)}, profile.ErrFullNameTooLong},
		{"unit 00", profile.Details{FullName: "A", Unit: ptr("00")}, profile.ErrInvalidUnit},
		{"unit 13", profile.Details{FullName: "A", Unit: ptr("13")}, profile.ErrInvalidUnit},
		{"unit without padding", profile.Details{FullName: "A", Unit: ptr("7")}, profile.ErrInvalidUnit},
		{"phone too long", profile.Details{FullName: "A", Phone: ptr(strings.Repeat("9", profile.MaxPhoneLength+1))}, profile.ErrPhoneTooLong},
		{"bio too long", profile.Details{FullName: "A", Bio: ptr(strings.Repeat("b", profile.MaxBioLength+1))}, profile.ErrBioTooLong},
		{"unit 12", profile.Details{FullName: "A", Unit: ptr("12")}, nil},
		{"empty unit", profile.Details{FullName: "A", Unit: ptr("")}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := profile.NewProfile(email, tc.details, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestProfileUpdates(t *testing.T) {
	later := builder.At(2024, time.March, 5, 9, 0)

	t.Run("details replace editable fields and blank clears", func(t *testing.T) {
		p := builder.NewProfileBuilder().BuildDomain()

		err := p.UpdateDetails(profile.Details{
			FullName:    "Maria S.",
			CompanyName: ptr(""),
			Unit:        ptr("03"),
			Phone:       ptr(" +55 11 99999-0000 "),
		}, later)
		require.NoError(t, err)

		assert.Equal(t, "Maria S.", p.FullName())
		assert.Nil(t, p.CompanyName())
		assert.Equal(t, "03", *p.Unit())
		assert.Equal(t, "+55 11 99999-0000", *p.Phone())
		assert.Equal(t, later, p.UpdatedAt())
	})

	t.Run("invalid details leave the profile untouched", func(t *testing.T) {
		b := builder.NewProfileBuilder()
		p := b.BuildDomain()

		err := p.UpdateDetails(profile.Details{FullName: "X", Unit: ptr("99")}, later)
		require.ErrorIs(t, err, profile.ErrInvalidUnit)
		assert.Equal(t, b.FullName, p.FullName())
		assert.Equal(t, b.UpdatedAt, p.UpdatedAt())
	})

	t.Run("admin fields", func(t *testing.T) {
		p := builder.NewProfileBuilder().Pending().BuildDomain()

		p.SetApproved(true, later)
		p.SetAdmin(true, later)
		require.NoError(t, p.SetQuota(ptr(20.0), later))

		assert.True(t, p.IsApproved())
		assert.Equal(t, user.RoleAdmin, p.Role())
		if diff := cmp.Diff(ptr(20.0), p.MonthlyHoursQuota()); diff != "" {
			t.Errorf("quota mismatch (-want +got):\n%s", diff)
		}

		require.NoError(t, p.SetQuota(nil, later))
		assert.Nil(t, p.MonthlyHoursQuota())
		require.ErrorIs(t, p.SetQuota(ptr(0.0), later), profile.ErrInvalidQuota)
	})
}

func TestIsValidUnit(t *testing.T) {
	for i, s := range []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12"} {
		assert.True(t, profile.IsValidUnit(s), "unit %d", i+1)
	}
	for _, s := range []string{"", "0", "00", "13", "19", "20", "1a", "007"} {
		assert.False(t, profile.IsValidUnit(s), s)
	}
}
