package parse

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Fill parses a fill character given on the command line or in the config.
// An empty string yields the NUL sentinel, which pads with spaces.
func Fill(input string) (rune, error) {
	switch {
	case input == "":
		return 0, nil
	case input == `\0`:
		return 0, nil
	case strings.HasPrefix(input, `\`):
		r, _, tail, err := strconv.UnquoteChar(input, 0)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid escape in fill %q", input)
		}
		if tail != "" {
			return 0, errors.Errorf("fill must be a single character: %q", input)
		}
		return r, nil
	}

	r, size := utf8.DecodeRuneInString(input)
	if r == utf8.RuneError && size <= 1 {
		return 0, errors.Errorf("fill is not valid utf-8: %q", input)
	}
	if size != len(input) {
		return 0, errors.Errorf("fill must be a single character: %q", input)
	}

	return r, nil
}

// Length parses a non-negative target length
func Length(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid length %q", input)
	}
	if n < 0 {
		return 0, errors.Errorf("length must not be negative: %d", n)
	}

	return n, nil
}

// Assignments parses key=value arguments, later keys win
func Assignments(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return nil, errors.Errorf("invalid assignment, expected key=value: %s", arg)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, errors.Errorf("empty key in assignment: %s", arg)
		}

		values[key] = value
	}

	return values, nil
}
