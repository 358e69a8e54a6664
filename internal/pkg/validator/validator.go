package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Month validation ("YYYY-MM")
func IsValidMonth(monthStr string) bool {
	_, err := time.Parse("2006-01", monthStr)
	return err == nil
}

var rutBodyRegex = regexp.MustCompile(`^[0-9]{1,8}$`)

// NormalizeRUT strips dots and spaces and upper-cases the verifier digit,
// returning the canonical "body-verifier" form.
func NormalizeRUT(rut string) string {
	rut = strings.ReplaceAll(rut, ".", "")
	rut = strings.ReplaceAll(rut, " ", "")
	return strings.ToUpper(strings.TrimSpace(rut))
}

// IsValidRUT validates a Chilean RUT ("11111111-1") including its modulo-11
// verifier digit.
func IsValidRUT(rut string) bool {
	rut = NormalizeRUT(rut)

	parts := strings.Split(rut, "-")
	if len(parts) != 2 || len(parts[1]) != 1 {
		return false
	}

	body, verifier := parts[0], parts[1]
	if !rutBodyRegex.MatchString(body) {
		return false
	}

	return rutVerifier(body) == verifier
}

// rutVerifier computes the modulo-11 verifier digit for a RUT body.
func rutVerifier(body string) string {
	sum := 0
	factor := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}

	switch rest := 11 - sum%11; rest {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return string(rune('0' + rest))
	}
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
