// Package fieldval holds normalization rules for fields whose stored form
// differs from the raw input. Each function runs at the store-write boundary:
// the value it returns is the canonical stored value, so later reads never
// re-normalize.
package fieldval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"innkeep/shared/failure"
)

const (
	cardNumberLength = 16
	cardMaskPrefix   = "****-****-****-"
)

// MaskCardNumber validates a raw 16 digit card number and returns its masked
// stored form. The mask only ever applies to raw input; a stored value is
// already masked and never passes through here again.
func MaskCardNumber(value any) (string, error) {
	raw, ok := value.(string)
	if !ok {
		return "", failure.BadRequestFromString("card number must be a string")
	}

	for _, r := range raw {
		if r < '0' || r > '9' {
			return "", failure.BadRequestFromString("card number must contain only digits")
		}
	}

	if len(raw) != cardNumberLength {
		return "", failure.BadRequestFromString(fmt.Sprintf("card number must be exactly %d characters long", cardNumberLength))
	}

	return cardMaskPrefix + raw[len(raw)-4:], nil
}

// IsMaskedCardNumber reports whether a value is already in stored form.
func IsMaskedCardNumber(value string) bool {
	return strings.HasPrefix(value, cardMaskPrefix)
}

// NormalizeStudentID coerces a student identifier to its stored integer form.
// Accepts integers, integral floats and numeric strings; rejects negatives.
func NormalizeStudentID(value any) (int, error) {
	var id int

	switch v := value.(type) {
	case int:
		id = v
	case int32:
		id = int(v)
	case int64:
		id = int(v)
	case float64:
		if v != math.Trunc(v) {
			return 0, failure.BadRequestFromString("student id must be a whole number")
		}

		id = int(v)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, failure.BadRequestFromString("student id must be numeric")
		}

		id = parsed
	default:
		return 0, failure.BadRequestFromString(fmt.Sprintf("student id cannot be of type %T", value))
	}

	if id < 0 {
		return 0, failure.BadRequestFromString("student id cannot be negative")
	}

	return id, nil
}
