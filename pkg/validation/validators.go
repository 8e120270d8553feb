package validation

import (
	"regexp"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Letters, spaces and common name punctuation: . ' - /
var nameRegex = regexp.MustCompile(`^[\p{L} .'/-]+$`)

var (
	choicesMu sync.RWMutex
	choices   = map[string]map[string]struct{}{}
)

// RegisterValidators registers custom validators to the validator instance
// and makes each list in lists available to the "choice" tag by name.
func RegisterValidators(v *validator.Validate, lists map[string][]string) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("choice", Choice)

	choicesMu.Lock()
	defer choicesMu.Unlock()
	for name, values := range lists {
		set := make(map[string]struct{}, len(values))
		for _, value := range values {
			set[value] = struct{}{}
		}
		choices[name] = set
	}
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}

// Choice validates that a string belongs to the registered list named by the
// tag parameter, e.g. `validate:"choice=state"`. Values may contain spaces,
// which the built-in oneof tag cannot express.
func Choice(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	choicesMu.RLock()
	defer choicesMu.RUnlock()
	set, ok := choices[fl.Param()]
	if !ok {
		return false
	}
	_, ok = set[val]
	return ok
}
