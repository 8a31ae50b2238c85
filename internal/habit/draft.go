package habit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultIcon is used when a Draft has no icon.
const DefaultIcon = "📝"

// Draft is user input for a new habit.
type Draft struct {
	Name        string `validate:"required,max=80"`
	Description string `validate:"max=280"`
	Icon        string `validate:"max=8"`
	Color       string `validate:"required,hexcolor"`
}

var draftValidate = validator.New(validator.WithRequiredStructEnabled())

// normalize trims whitespace and fills defaults for icon and color.
func (d Draft) normalize() Draft {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.Icon = strings.TrimSpace(d.Icon)
	d.Color = strings.TrimSpace(d.Color)
	if d.Icon == "" {
		d.Icon = DefaultIcon
	}
	if d.Color == "" {
		d.Color = Palette[0]
	}
	return d
}

// Validate normalizes d and checks it, returning an error wrapping
// ErrInvalidHabit that names the first offending field.
func (d Draft) Validate() (Draft, error) {
	d = d.normalize()
	err := draftValidate.Struct(d)
	if err == nil {
		return d, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return d, fmt.Errorf("%w: %v", ErrInvalidHabit, err)
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return d, fmt.Errorf("%w: %s can't be empty", ErrInvalidHabit, field)
	case "max":
		return d, fmt.Errorf("%w: %s is too long (max %s characters)", ErrInvalidHabit, field, fe.Param())
	case "hexcolor":
		return d, fmt.Errorf("%w: color %q is not a hex color like #10b981", ErrInvalidHabit, d.Color)
	default:
		return d, fmt.Errorf("%w: %s failed %q", ErrInvalidHabit, field, fe.Tag())
	}
}
