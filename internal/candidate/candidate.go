// Package candidate holds the interviewee record and the rules used to fill it:
// per-field validation, the ordered scan for the next missing field and the
// tech stack merge.
package candidate

import (
	"strconv"
	"strings"
)

// Candidate is the information collected from a single interviewee.
// A nil pointer or blank string means the field has not been provided yet.
type Candidate struct {
	FullName         *string  `json:"full_name" mapstructure:"full_name"`
	Email            *string  `json:"email" mapstructure:"email"`
	Phone            *string  `json:"phone" mapstructure:"phone"`
	YearsExperience  *float64 `json:"years_experience" mapstructure:"years_experience"`
	DesiredPositions *string  `json:"desired_positions" mapstructure:"desired_positions"`
	Location         *string  `json:"location" mapstructure:"location"`
	TechStack        *string  `json:"tech_stack" mapstructure:"tech_stack"`
}

// New returns an empty candidate.
func New() *Candidate {
	return &Candidate{}
}

// Get returns the textual form of the field and whether it holds a non-blank value.
func (c *Candidate) Get(field Field) (string, bool) {
	if c == nil {
		return "", false
	}

	if field == YearsExperience {
		if c.YearsExperience == nil {
			return "", false
		}
		return formatYears(*c.YearsExperience), true
	}

	ptr := c.textField(field)
	if ptr == nil || *ptr == nil {
		return "", false
	}

	value := *ptr
	if strings.TrimSpace(*value) == "" {
		return *value, false
	}
	return *value, true
}

// Set stores a validated value. Unknown fields are ignored.
func (c *Candidate) Set(v Value) {
	if c == nil {
		return
	}

	if v.Field == YearsExperience {
		if v.Number != nil {
			years := *v.Number
			c.YearsExperience = &years
		}
		return
	}

	ptr := c.textField(v.Field)
	if ptr == nil {
		return
	}
	text := v.Text
	*ptr = &text
}

func (c *Candidate) textField(field Field) **string {
	switch field {
	case FullName:
		return &c.FullName
	case Email:
		return &c.Email
	case Phone:
		return &c.Phone
	case DesiredPositions:
		return &c.DesiredPositions
	case Location:
		return &c.Location
	case TechStack:
		return &c.TechStack
	default:
		return nil
	}
}

func formatYears(years float64) string {
	return strconv.FormatFloat(years, 'f', -1, 64)
}
