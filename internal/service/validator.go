package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/samandr77/microservices/dashboard/internal/entity"
)

// Limits of a client form. The validate tags of clientFormRules carry the same numbers.
const (
	ClientNameMaxLen = 100
	EmailMaxLen      = 255
	PasswordMinLen   = 8
	LogoMaxSize      = 5 << 20
)

var (
	emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegexp = regexp.MustCompile(`^\+?[0-9][0-9 -]{6,18}[0-9]$`)
)

// FormErrors maps a form field to the reason it was rejected.
type FormErrors map[string]string

func (e FormErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field, reason := range e {
		fields = append(fields, field+": "+reason)
	}

	sort.Strings(fields)

	return fmt.Sprintf("%s: %s", entity.ErrInvalidForm, strings.Join(fields, ", "))
}

func (e FormErrors) Unwrap() error {
	return entity.ErrInvalidForm
}

// Has reports whether field was rejected. It feeds the invalid state of the form inputs.
func (e FormErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

type clientFormRules struct {
	ClientName      string     `form:"clientName" validate:"required,max=100"`
	ServiceURL      string     `form:"serviceUrl" validate:"omitempty,http_url"`
	ManagerEmail    string     `form:"managerEmail" validate:"omitempty,max=255,manager_email"`
	ManagerPhone    string     `form:"managerPhone" validate:"omitempty,manager_phone"`
	AccountID       string     `form:"accountId" validate:"required"`
	AccountPassword string     `form:"accountPassword" validate:"omitempty,min=8"`
	Logo            *logoRules `form:"logo" validate:"omitempty"`
}

type logoRules struct {
	Size        int    `form:"size" validate:"max=5242880"`
	ContentType string `form:"contentType" validate:"startswith=image/"`
}

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})

	_ = v.RegisterValidation("manager_email", func(fl validator.FieldLevel) bool {
		email := fl.Field().String()
		return emailRegexp.MatchString(email) && !strings.Contains(email, "..")
	})

	_ = v.RegisterValidation("manager_phone", func(fl validator.FieldLevel) bool {
		return phoneRegexp.MatchString(fl.Field().String())
	})

	return v
}

var formReasons = map[string]string{
	"required":      "required",
	"max":           "too long",
	"min":           "too short",
	"http_url":      "invalid url",
	"manager_email": "invalid email",
	"manager_phone": "invalid phone",
	"startswith":    "not an image",
}

// ValidateClientForm checks the fields of a create or update form. The password is only
// checked when set; CreateClient requires it separately.
func ValidateClientForm(form entity.ClientForm) FormErrors {
	rules := clientFormRules{
		ClientName:      strings.TrimSpace(form.ClientName),
		ServiceURL:      form.ServiceURL,
		ManagerEmail:    form.ManagerEmail,
		ManagerPhone:    form.ManagerPhone,
		AccountID:       strings.TrimSpace(form.AccountID),
		AccountPassword: form.AccountPassword,
	}

	if form.Logo != nil {
		rules.Logo = &logoRules{Size: len(form.Logo.Data), ContentType: form.Logo.ContentType}
	}

	err := formValidator.Struct(rules)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return FormErrors{"": err.Error()}
	}

	errs := FormErrors{}

	for _, fe := range fieldErrs {
		// Namespace is "clientFormRules.<field>[.<nested>]".
		parts := strings.Split(fe.Namespace(), ".")
		if len(parts) < 2 || errs.Has(parts[1]) {
			continue
		}

		field := parts[1]

		reason, ok := formReasons[fe.Tag()]
		if !ok {
			reason = "invalid"
		}

		if field == entity.FieldLogo && fe.Tag() == "max" {
			reason = "too large"
		}

		errs[field] = reason
	}

	return errs
}

func validateNewClientForm(form entity.ClientForm) FormErrors {
	errs := ValidateClientForm(form)

	if form.AccountPassword == "" {
		if errs == nil {
			errs = FormErrors{}
		}

		errs[entity.FieldAccountPassword] = "required"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}
