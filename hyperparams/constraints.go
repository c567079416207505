package hyperparams

import (
	"fmt"
	"strconv"
	"strings"
)

// Constraint validates a single hyperparameter value. Values arrive
// as strings; numeric constraints parse before checking bounds.
type Constraint interface {
	Validate(name, value string) error
	Describe() string
}

// IntRange accepts integers within [Min, Max]. A nil bound is open.
type IntRange struct {
	Min *int64
	Max *int64
}

func (c IntRange) Validate(name, value string) error {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return NewValidationError(name, value, "not an integer")
	}
	if c.Min != nil && n < *c.Min {
		return NewValidationError(name, value, c.Describe())
	}
	if c.Max != nil && n > *c.Max {
		return NewValidationError(name, value, c.Describe())
	}
	return nil
}

func (c IntRange) Describe() string {
	return fmt.Sprintf("integer in %s", boundsString(c.Min, c.Max))
}

// FloatRange accepts floats within [Min, Max]. A nil bound is open.
type FloatRange struct {
	Min *float64
	Max *float64
}

func (c FloatRange) Validate(name, value string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return NewValidationError(name, value, "not a number")
	}
	if c.Min != nil && f < *c.Min {
		return NewValidationError(name, value, c.Describe())
	}
	if c.Max != nil && f > *c.Max {
		return NewValidationError(name, value, c.Describe())
	}
	return nil
}

func (c FloatRange) Describe() string {
	return fmt.Sprintf("number in %s", floatBoundsString(c.Min, c.Max))
}

// Enum accepts one of a fixed list of values.
type Enum struct {
	Values []string
}

func (c Enum) Validate(name, value string) error {
	for _, v := range c.Values {
		if v == value {
			return nil
		}
	}
	return NewValidationError(name, value, c.Describe())
}

func (c Enum) Describe() string {
	return "one of: " + strings.Join(c.Values, ", ")
}

// Bool accepts "true" or "false".
type Bool struct{}

func (c Bool) Validate(name, value string) error {
	if value != "true" && value != "false" {
		return NewValidationError(name, value, c.Describe())
	}
	return nil
}

func (c Bool) Describe() string {
	return "true or false"
}

// Custom wraps an arbitrary validation func.
type Custom struct {
	Desc string
	Fn   func(value string) error
}

func (c Custom) Validate(name, value string) error {
	if err := c.Fn(value); err != nil {
		return NewValidationError(name, value, c.Desc)
	}
	return nil
}

func (c Custom) Describe() string {
	return c.Desc
}

func boundsString(min, max *int64) string {
	lo, hi := "-inf", "+inf"
	if min != nil {
		lo = strconv.FormatInt(*min, 10)
	}
	if max != nil {
		hi = strconv.FormatInt(*max, 10)
	}
	return fmt.Sprintf("[%s, %s]", lo, hi)
}

func floatBoundsString(min, max *float64) string {
	lo, hi := "-inf", "+inf"
	if min != nil {
		lo = strconv.FormatFloat(*min, 'g', -1, 64)
	}
	if max != nil {
		hi = strconv.FormatFloat(*max, 'g', -1, 64)
	}
	return fmt.Sprintf("[%s, %s]", lo, hi)
}
