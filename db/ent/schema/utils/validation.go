package utils

import (
	"fmt"
	"strings"
)

// EnumValidator returns an ent field validator restricting values to the
// allowed set.
func EnumValidator(allowed ...string) func(string) error {
	set := map[string]struct{}{}
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q not in [%s]", s, strings.Join(allowed, ", "))
	}
}
