package numbering

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/quoteline/backend/internal/domain/shared"
)

// defaultCounterWidth is the zero-padding applied to a bare {COUNTER} token
const defaultCounterWidth = 4

var counterWidthPattern = regexp.MustCompile(`\{COUNTER:(\d+)d\}`)

// Render expands a numbering template into a final document number.
//
// Tokens are replaced in a fixed order regardless of their position:
//  1. {PREFIX}      - the literal prefix, all occurrences
//  2. {YEAR}        - the given calendar year, 4 digits
//  3. {COUNTER:Nd}  - counter left-zero-padded to N digits, each occurrence
//     padded to its own width
//  4. {COUNTER}     - counter padded to the default width of 4
//
// Unrecognized {...} tokens are left verbatim in the output so templates may
// carry tokens a later release understands. Render is pure: the year is an
// argument, never read from the system clock.
func Render(template, prefix string, counter int64, year int) string {
	out := strings.ReplaceAll(template, "{PREFIX}", prefix)
	out = strings.ReplaceAll(out, "{YEAR}", fmt.Sprintf("%04d", year))
	out = counterWidthPattern.ReplaceAllStringFunc(out, func(token string) string {
		width, err := strconv.Atoi(counterWidthPattern.FindStringSubmatch(token)[1])
		if err != nil {
			return token
		}
		return fmt.Sprintf("%0*d", width, counter)
	})
	return strings.ReplaceAll(out, "{COUNTER}", fmt.Sprintf("%0*d", defaultCounterWidth, counter))
}

// ValidateFormat checks that a template carries a counter token. Without one
// every rendered number of a type would be identical, so such templates are
// rejected before they reach the settings store.
func ValidateFormat(template string) error {
	if strings.TrimSpace(template) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Format template cannot be empty")
	}
	probe := Render(template, "X", 1234567, 2025)
	if !strings.Contains(probe, "1234567") {
		return shared.NewDomainError("INVALID_INPUT", "Format template must contain a {COUNTER} token")
	}
	return nil
}
