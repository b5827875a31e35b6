package otp

// ValidateOptions overrides engine configuration for a single validation
// call. Fields left at zero (or negative) fall back to the engine's current
// settings.
type ValidateOptions struct {
	Digits        int
	TolerancePrev int
	ToleranceNext int
}

// maxCodeDigits bounds the significant digits a candidate code can carry; a
// longer code can never match and is reported as not valid rather than as a
// format error.
const maxCodeDigits = 9

// IsCodeValid reports whether code matches any counter in the tolerance
// window [current-prev, current+next]. Every candidate in the window is
// computed even after a match is found, so validation latency does not
// reveal the match position.
//
// In HOTP mode a successful validation advances the counter to
// max(matchedCounter, currentCounter)+1, preventing reuse of the accepted
// counter even when the match sat in the future part of the window. TOTP
// validation never mutates the counter.
func (e *Engine) IsCodeValid(code uint64, opts ...ValidateOptions) (bool, error) {
	var o ValidateOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	digits := e.digits
	if o.Digits > 0 {
		if o.Digits < MinDigits || o.Digits > MaxDigits {
			return false, ErrDigitsOutOfRange
		}
		digits = o.Digits
	}
	prev := e.tolerancePrev
	if o.TolerancePrev > 0 {
		prev = o.TolerancePrev
	}
	next := e.toleranceNext
	if o.ToleranceNext > 0 {
		next = o.ToleranceNext
	}

	current := e.Counter()
	lo := uint64(0)
	if uint64(prev) <= current {
		lo = current - uint64(prev)
	}
	hi := current + uint64(next)

	valid := false
	matched := uint64(0)
	for c := lo; c <= hi; c++ {
		candidate, err := e.deriveCode(c, digits)
		if err != nil {
			return false, err
		}
		// No early exit: the whole window is always computed.
		if candidate == code {
			valid = true
			matched = c
		}
	}

	if valid && e.timeStep == 0 {
		advance := matched
		if current > advance {
			advance = current
		}
		e.counter = advance + 1
	}
	return valid, nil
}

// IsCodeStringValid validates a code typed by a user. Whitespace anywhere in
// the string is ignored; any other non-digit character is a format error. A
// code with more than 9 significant digits is out of representable range and
// reported as not valid without erroring.
func (e *Engine) IsCodeStringValid(code string, opts ...ValidateOptions) (bool, error) {
	value, representable, err := parseCode(code)
	if err != nil {
		return false, err
	}
	if !representable {
		return false, nil
	}
	return e.IsCodeValid(value, opts...)
}

// parseCode scans the full string so format errors are detected even after
// an overflow. representable is false when the value carries more than
// maxCodeDigits significant digits.
func parseCode(s string) (value uint64, representable bool, err error) {
	significant := 0
	seen := false

	for _, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\v' || r == '\f' || r == '\r':
			continue
		case r < '0' || r > '9':
			return 0, false, ErrInvalidCodeFormat
		}

		seen = true
		if significant > 0 || r != '0' {
			significant++
		}
		if significant <= maxCodeDigits {
			value = value*10 + uint64(r-'0')
		}
	}

	if !seen {
		return 0, false, ErrInvalidCodeFormat
	}
	return value, significant <= maxCodeDigits, nil
}
