// Package validation contains the pure input checks consumed before
// any mutating call.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// Skill field minimums.
const (
	MinSkillNameLength   = 2
	MinCategoryLength    = 2
	MinDescriptionLength = 10
)

// ValidateEmail checks email format and that the domain is in the
// allow-list.
func ValidateEmail(email string, allowedDomains []string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	at := strings.LastIndex(email, "@")
	domain := strings.ToLower(email[at+1:])
	for _, allowed := range allowedDomains {
		if domain == allowed {
			return nil
		}
	}
	return fmt.Errorf("email domain must be one of: %s", strings.Join(allowedDomains, ", "))
}

// ValidatePassword checks password strength.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

// ValidateSkillInput checks the skill listing fields.
func ValidateSkillInput(name, category, description string) error {
	if len(strings.TrimSpace(name)) < MinSkillNameLength {
		return fmt.Errorf("skill name must be at least %d characters", MinSkillNameLength)
	}
	if len(strings.TrimSpace(category)) < MinCategoryLength {
		return fmt.Errorf("category must be at least %d characters", MinCategoryLength)
	}
	if len(strings.TrimSpace(description)) < MinDescriptionLength {
		return fmt.Errorf("description must be at least %d characters", MinDescriptionLength)
	}
	return nil
}
