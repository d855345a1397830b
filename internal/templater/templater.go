package templater

import (
	"regexp"
	"strings"

	"leftpad/internal/pad"
	"leftpad/internal/parse"
	"leftpad/internal/utils"

	"github.com/pkg/errors"
)

var templatePattern = regexp.MustCompile(`{((\w+?)(:.*?)?)}`)

type Templater struct {
	Values map[string]string
	Fill   rune
}

func New(values map[string]string, fill rune) *Templater {
	return &Templater{
		Values: values,
		Fill:   fill,
	}
}

// handleValue applies the options of a placeholder to value.
// Options are ":width", ":width:fill" or ":#width" for numbers. An empty
// fill falls back to the default fill.
func (t *Templater) handleValue(value, options string) (string, error) {
	if options == "" {
		return value, nil
	}

	widthOpt, fillOpt, hasFill := strings.Cut(strings.TrimPrefix(options, ":"), ":")

	if numWidth, ok := strings.CutPrefix(widthOpt, "#"); ok {
		if hasFill {
			return "", errors.Errorf("number placeholder does not take a fill: %s", options)
		}
		width, err := parse.Length(numWidth)
		if err != nil {
			return "", err
		}
		return utils.PadNumber(value, width)
	}

	width, err := parse.Length(widthOpt)
	if err != nil {
		return "", err
	}

	fill := t.Fill
	if hasFill && fillOpt != "" {
		if fill, err = parse.Fill(fillOpt); err != nil {
			return "", err
		}
	}

	return pad.Left(value, width, fill), nil
}

// ExecTemplate replaces every known placeholder in template. Unknown
// placeholders are kept as they are.
func (t *Templater) ExecTemplate(template string) (string, error) {
	var execErr error

	out := templatePattern.ReplaceAllStringFunc(template, func(placeholder string) string {
		if execErr != nil {
			return placeholder
		}

		match := templatePattern.FindStringSubmatch(placeholder)
		value, ok := t.Values[match[2]]
		if !ok {
			return placeholder
		}

		replace, err := t.handleValue(value, match[3])
		if err != nil {
			execErr = errors.Wrapf(err, "placeholder %s", placeholder)
			return placeholder
		}

		return replace
	})
	if execErr != nil {
		return "", execErr
	}

	return out, nil
}

// Names returns the placeholder names used in template, in order of first use.
func Names(template string) []string {
	var names []string
	seen := make(map[string]bool)

	for _, match := range templatePattern.FindAllStringSubmatch(template, -1) {
		if name := match[2]; !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	return names
}
