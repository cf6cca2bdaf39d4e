package entities

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

// ErrInvalidRegistration wraps every registration validation failure.
var ErrInvalidRegistration = errors.New("invalid registration")

var phoneRegexp = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

const minPasswordLen = 8

// RegistrationForm is a role-tagged registration payload. Which fields are
// required depends on Role: companies (manufacturer, seller, startup) register
// with a company name and industry taxonomy, buyers with a full name and
// interests, explorers with a full name only.
type RegistrationForm struct {
	Role Role `json:"role"`

	FullName    string `json:"fullName,omitempty"`
	CompanyName string `json:"companyName,omitempty"`

	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`

	IndustryCategory string `json:"industryCategory,omitempty"`
	Subcategory      string `json:"subcategory,omitempty"`
	Specialization   string `json:"specialization,omitempty"`

	InterestCategory  string `json:"interestCategory,omitempty"`
	SpecificInterests string `json:"specificInterests,omitempty"`
}

// Validate checks the base fields and the role variant's required set.
func (f RegistrationForm) Validate() error {
	if !f.Role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidRegistration, f.Role)
	}

	if _, err := mail.ParseAddress(f.Email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidRegistration)
	}

	if !phoneRegexp.MatchString(f.Phone) {
		return fmt.Errorf("%w: invalid phone", ErrInvalidRegistration)
	}

	if len(strings.TrimSpace(f.Address)) < 5 {
		return fmt.Errorf("%w: address is required", ErrInvalidRegistration)
	}

	if len(f.Password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidRegistration, minPasswordLen)
	}

	switch f.Role {
	case ManufacturerRole, SellerRole, StartupRole:
		return f.validateCompany()
	case BuyerRole:
		return f.validateBuyer()
	case ExplorerRole:
		return f.validateExplorer()
	}

	return nil
}

func (f RegistrationForm) validateCompany() error {
	if len(strings.TrimSpace(f.CompanyName)) < 2 {
		return fmt.Errorf("%w: company name is required", ErrInvalidRegistration)
	}

	for k, v := range map[string]string{
		"industry category": f.IndustryCategory,
		"subcategory":       f.Subcategory,
		"specialization":    f.Specialization,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidRegistration, k)
		}
	}

	return nil
}

func (f RegistrationForm) validateBuyer() error {
	if len(strings.TrimSpace(f.FullName)) < 2 {
		return fmt.Errorf("%w: full name is required", ErrInvalidRegistration)
	}

	if strings.TrimSpace(f.InterestCategory) == "" {
		return fmt.Errorf("%w: interest category is required", ErrInvalidRegistration)
	}

	if strings.TrimSpace(f.SpecificInterests) == "" {
		return fmt.Errorf("%w: specific interests are required", ErrInvalidRegistration)
	}

	return nil
}

func (f RegistrationForm) validateExplorer() error {
	if len(strings.TrimSpace(f.FullName)) < 2 {
		return fmt.Errorf("%w: full name is required", ErrInvalidRegistration)
	}

	return nil
}

// Profile builds the profile record to be persisted for the form.
func (f RegistrationForm) Profile() Profile {
	return Profile{
		Role:              f.Role,
		FullName:          strings.TrimSpace(f.FullName),
		CompanyName:       strings.TrimSpace(f.CompanyName),
		Email:             f.Email,
		Phone:             f.Phone,
		Address:           strings.TrimSpace(f.Address),
		IndustryCategory:  f.IndustryCategory,
		Subcategory:       f.Subcategory,
		Specialization:    f.Specialization,
		InterestCategory:  f.InterestCategory,
		SpecificInterests: f.SpecificInterests,
	}
}
