package inquire

import (
	"fmt"
	"regexp"
	"strings"
)

var yesNoRegex = regexp.MustCompile(`(?i)^(y(es)?|no?)$`)

// ConvertYesNo maps booleans and empty values onto "Y" and "N", so that a pre-supplied
// answer looks like one typed at a yes/no prompt. Other values pass through, except that
// yes/no spellings are normalized.
func ConvertYesNo(value any) any {
	switch v := value.(type) {
	case nil:
		return "N"
	case bool:
		if v {
			return "Y"
		}

		return "N"
	case int:
		if v == 0 {
			return "N"
		}
	case int64:
		if v == 0 {
			return "N"
		}
	case float64:
		if v == 0 {
			return "N"
		}
	case string:
		if v == "" {
			return "N"
		}

		if yesNoRegex.MatchString(v) {
			return strings.ToUpper(v[:1])
		}
	}

	return value
}

// YesNo accepts y, yes, n and no in any case and stores "Y" or "N".
// An empty value falls back to def when def is itself a yes/no spelling.
func YesNo(def string) TransformFunc {
	return func(value any, _ Answers) (any, error) {
		s, _ := value.(string)
		if b, ok := value.(bool); ok {
			return ConvertYesNo(b), nil
		}

		if s == "" {
			s = def
		}

		if !yesNoRegex.MatchString(s) {
			return nil, fmt.Errorf("%w: please answer y(es) or n(o)", ErrInvalidAnswer)
		}

		return strings.ToUpper(s[:1]), nil
	}
}

func IsYes(value any) bool {
	return ConvertYesNo(value) == "Y"
}
