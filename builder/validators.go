// Package builder provides validation helpers enforcing parameter
// contracts of the constructors.
package builder

import "fmt"

// validateMin ensures got ≥ min, wrapping sentinel with method context.
// Complexity: O(1).
func validateMin(method, param string, got, min int, sentinel error) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, sentinel)
	}

	return nil
}

// validateTree checks the Cayley tree domain: generations ≥ 0, links ≥ 2.
func validateTree(generations, links int) error {
	if err := validateMin(MethodCayleyTree, "generations", generations, MinTreeGenerations, ErrInvalidTopology); err != nil {
		return err
	}

	return validateMin(MethodCayleyTree, "links", links, MinTreeLinks, ErrInvalidTopology)
}
