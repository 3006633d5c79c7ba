package selection

import (
	"fmt"
	"strings"
	"unicode"

	"tsel/internal/platform"
)

// GroupConfig holds the tag groups to exclude and include. Both sets are
// read once at finder construction and immutable thereafter.
type GroupConfig struct {
	ExcludedGroups []string
	IncludedGroups []string
}

// tagPredicate reports whether a node survives tag filtering.
type tagPredicate func(d *platform.Descriptor) bool

// reservedTagChars cannot appear in a tag because they are operators of
// the tag expression language.
const reservedTagChars = "!&|(),"

func validateTag(tag string) error {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return fmt.Errorf("tag must not be blank")
	}
	for _, r := range trimmed {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("tag must not contain whitespace or control characters")
		}
		if strings.ContainsRune(reservedTagChars, r) {
			return fmt.Errorf("tag must not contain reserved character %q", r)
		}
	}
	return nil
}

// composeTagPredicate builds the composite inclusion/exclusion predicate
// for the given group configuration. Exclusion takes precedence: a node
// tagged with both an excluded and an included group is rejected. Empty
// configuration accepts every node.
func composeTagPredicate(groups GroupConfig) (tagPredicate, error) {
	var preds []tagPredicate

	if len(groups.ExcludedGroups) > 0 {
		excluded, err := validateGroups(groups.ExcludedGroups)
		if err != nil {
			return nil, err
		}
		preds = append(preds, func(d *platform.Descriptor) bool {
			return !hasAnyTag(d, excluded)
		})
	}

	if len(groups.IncludedGroups) > 0 {
		included, err := validateGroups(groups.IncludedGroups)
		if err != nil {
			return nil, err
		}
		preds = append(preds, func(d *platform.Descriptor) bool {
			return hasAnyTag(d, included)
		})
	}

	if len(preds) == 0 {
		return func(*platform.Descriptor) bool { return true }, nil
	}

	return func(d *platform.Descriptor) bool {
		for _, p := range preds {
			if !p(d) {
				return false
			}
		}
		return true
	}, nil
}

func validateGroups(groups []string) ([]string, error) {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		if err := validateTag(g); err != nil {
			return nil, &ConfigurationError{Group: g, Err: err}
		}
		out = append(out, strings.TrimSpace(g))
	}
	return out, nil
}

func hasAnyTag(d *platform.Descriptor, tags []string) bool {
	for _, tag := range tags {
		if d.HasTag(tag) {
			return true
		}
	}
	return false
}
