package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationForm_Validate(t *testing.T) {
	base := RegistrationForm{
		Email:    "jane@example.com",
		Phone:    "+12025550100",
		Address:  "1 Main Street",
		Password: "verysecret",
	}

	company := base
	company.Role = ManufacturerRole
	company.CompanyName = "Acme"
	company.IndustryCategory = "metals"
	company.Subcategory = "fabrication"
	company.Specialization = "cnc"

	buyer := base
	buyer.Role = BuyerRole
	buyer.FullName = "Jane Doe"
	buyer.InterestCategory = "electronics"
	buyer.SpecificInterests = "audio"

	explorer := base
	explorer.Role = ExplorerRole
	explorer.FullName = "Jane Doe"

	tt := []struct {
		name   string
		modify func(f *RegistrationForm)
		form   RegistrationForm

		valid bool
	}{
		{
			name:  "manufacturer",
			form:  company,
			valid: true,
		},
		{
			name: "seller",
			form: company,
			modify: func(f *RegistrationForm) {
				f.Role = SellerRole
			},
			valid: true,
		},
		{
			name: "startup",
			form: company,
			modify: func(f *RegistrationForm) {
				f.Role = StartupRole
			},
			valid: true,
		},
		{
			name:  "buyer",
			form:  buyer,
			valid: true,
		},
		{
			name:  "explorer",
			form:  explorer,
			valid: true,
		},
		{
			name: "unknown role",
			form: explorer,
			modify: func(f *RegistrationForm) {
				f.Role = "admin"
			},
		},
		{
			name: "invalid email",
			form: explorer,
			modify: func(f *RegistrationForm) {
				f.Email = "not-an-email"
			},
		},
		{
			name: "invalid phone",
			form: explorer,
			modify: func(f *RegistrationForm) {
				f.Phone = "phone"
			},
		},
		{
			name: "short address",
			form: explorer,
			modify: func(f *RegistrationForm) {
				f.Address = "x"
			},
		},
		{
			name: "short password",
			form: explorer,
			modify: func(f *RegistrationForm) {
				f.Password = "1234567"
			},
		},
		{
			name: "company without name",
			form: company,
			modify: func(f *RegistrationForm) {
				f.CompanyName = " "
			},
		},
		{
			name: "company without taxonomy",
			form: company,
			modify: func(f *RegistrationForm) {
				f.Subcategory = ""
			},
		},
		{
			name: "buyer without name",
			form: buyer,
			modify: func(f *RegistrationForm) {
				f.FullName = ""
			},
		},
		{
			name: "buyer without interests",
			form: buyer,
			modify: func(f *RegistrationForm) {
				f.SpecificInterests = " "
			},
		},
		{
			name: "explorer without name",
			form: explorer,
			modify: func(f *RegistrationForm) {
				f.FullName = "J"
			},
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			f := tc.form
			if tc.modify != nil {
				tc.modify(&f)
			}

			err := f.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.True(t, errors.Is(err, ErrInvalidRegistration))
			}
		})
	}
}

func TestRegistrationForm_Profile(t *testing.T) {
	f := RegistrationForm{
		Role:             ManufacturerRole,
		CompanyName:      " Acme ",
		Email:            "acme@example.com",
		Phone:            "+12025550100",
		Address:          " 1 Main Street ",
		Password:         "verysecret",
		IndustryCategory: "metals",
		Subcategory:      "fabrication",
		Specialization:   "cnc",
	}

	p := f.Profile()
	assert.Equal(t, "Acme", p.CompanyName)
	assert.Equal(t, "1 Main Street", p.Address)
	assert.Equal(t, ManufacturerRole, p.Role)
	assert.Empty(t, p.ID)
}

func TestProfile_DisplayName(t *testing.T) {
	assert.Equal(t, "Jane Doe", Profile{FullName: "Jane Doe", CompanyName: "Acme"}.DisplayName())
	assert.Equal(t, "Acme", Profile{CompanyName: "Acme"}.DisplayName())
}

func TestCanonicalPair(t *testing.T) {
	a, b := CanonicalPair("bob", "alice")
	assert.Equal(t, "alice", a)
	assert.Equal(t, "bob", b)

	a, b = CanonicalPair("alice", "bob")
	assert.Equal(t, "alice", a)
	assert.Equal(t, "bob", b)
}

func TestConversation_Peer(t *testing.T) {
	c := Conversation{
		Participants: [2]ProfileSummary{{ID: "alice"}, {ID: "bob"}},
	}

	assert.Equal(t, "bob", c.Peer("alice").ID)
	assert.Equal(t, "alice", c.Peer("bob").ID)
}
