package otp

import "strings"

// groupings maps a code length to its display grouping. Purely
// presentational; validation ignores spacing entirely.
var groupings = map[int][]int{
	4: {2, 2},
	5: {2, 3},
	6: {3, 3},
	7: {2, 3, 2},
	8: {3, 2, 3},
	9: {3, 3, 3},
}

// FormatCode inserts spaces into a plain code string according to its
// length, e.g. "755224" becomes "755 224" and "91234567" becomes
// "912 34 567". Codes of unknown length are returned unchanged.
func FormatCode(code string) string {
	groups, ok := groupings[len(code)]
	if !ok {
		return code
	}

	parts := make([]string, 0, len(groups))
	for _, n := range groups {
		parts = append(parts, code[:n])
		code = code[n:]
	}
	return strings.Join(parts, " ")
}

// FormattedCode generates the current code and returns it grouped for
// display. It carries the same HOTP counter side effect as Code.
func (e *Engine) FormattedCode() (string, error) {
	code, err := e.Code()
	if err != nil {
		return "", err
	}
	return FormatCode(code), nil
}
