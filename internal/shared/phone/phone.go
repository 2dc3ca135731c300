package phone

import (
	"regexp"
	"strings"
)

var krMobile = regexp.MustCompile(`^01[0-9]{8,9}$`)

// Normalize strips everything but digits: "010-1234-5678" -> "01012345678".
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func IsValid(normalized string) bool {
	return krMobile.MatchString(normalized)
}

// Mask hides the middle block: "01012345678" -> "010-****-5678".
func Mask(normalized string) string {
	if len(normalized) < 10 {
		return normalized
	}
	return normalized[:3] + "-****-" + normalized[len(normalized)-4:]
}

// E164 converts a domestic mobile number to +82 form for SMS providers.
func E164(normalized string) string {
	if strings.HasPrefix(normalized, "0") {
		return "+82" + normalized[1:]
	}
	return "+" + normalized
}
