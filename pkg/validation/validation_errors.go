package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Profile fields
	"Name":              "Name",
	"Email":             "Email",
	"Phone":             "Phone Number",
	"ProfilePhotoURL":   "Profile Photo URL",
	"ResumeURL":         "Resume URL",
	"LinkedInURL":       "LinkedIn URL",
	"CurrentRole":       "Current Role",
	"YearsOfExperience": "Years of Experience",
	"Skills":            "Skills",
	"ProfessionalTitle": "Professional Title",
	"Company":           "Company",
	"Price":             "Price",

	// Scheduling fields
	"CandidateID":   "Candidate ID",
	"InterviewerID": "Interviewer ID",
	"Date":          "Date",
	"From":          "Start Time",
	"To":            "End Time",
	"Position":      "Position",
	"Status":        "Status",
	"Feedback":      "Feedback",
}

// ValidationRules contains units for min/max messages
var ValidationRules = map[string]map[string]interface{}{
	"YearsOfExperience": {"min": 0, "max": 60, "unit": "years"},
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	fieldName := e.Field()
	label := getFieldLabel(fieldName)
	tag := e.Tag()
	param := e.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s: is required", label)

	case "min":
		if rules, ok := ValidationRules[fieldName]; ok {
			if unit, hasUnit := rules["unit"]; hasUnit {
				return fmt.Sprintf("%s: must be at least %s %s", label, param, unit)
			}
		}
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)

	case "max":
		if rules, ok := ValidationRules[fieldName]; ok {
			if unit, hasUnit := rules["unit"]; hasUnit {
				return fmt.Sprintf("%s: must be at most %s %s", label, param, unit)
			}
		}
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))

	case "email":
		return fmt.Sprintf("%s: invalid email format", label)

	case "url":
		return fmt.Sprintf("%s: invalid URL format", label)

	case "uuid":
		return fmt.Sprintf("%s: invalid identifier format", label)

	case "numeric":
		return fmt.Sprintf("%s: must be a number", label)

	case "valid_name":
		return fmt.Sprintf("%s: only letters, spaces and common punctuation (. ' - /) are allowed", label)

	case "valid_phone":
		return fmt.Sprintf("%s: invalid phone number (7-15 digits, optional +)", label)

	case "no_emoji":
		return fmt.Sprintf("%s: must not contain emoji or special symbols", label)

	case "clock12h":
		return fmt.Sprintf("%s: must be a 12-hour time like 10:00 AM", label)

	case "slot_date":
		return fmt.Sprintf("%s: must be a date in MM/DD/YYYY format", label)

	case "reschedule_date":
		return fmt.Sprintf("%s: must be a date in DD/MM/YYYY format", label)

	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, tag)
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
