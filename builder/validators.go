// Package builder provides validation helpers to enforce the parameter
// contracts of the allocator, wiring engine and generator.
//
// Each function returns a *ParamError when its precondition is violated.
package builder

import "math"

// validateParams enforces the allocator domain:
// n ≥ 0, s ≥ 1, g ≥ 0, and g ≥ 1 whenever n ≥ 2.
//
// Complexity: O(1) time and space.
func validateParams(method string, n, s, g int) error {
	if n < MinComponents {
		return paramErrorf(method, n, s, g, ErrInvalidArgument, "components must be ≥ %d, got %d", MinComponents, n)
	}
	if s < MinComponentSize {
		return paramErrorf(method, n, s, g, ErrInvalidArgument, "component size must be ≥ %d, got %d", MinComponentSize, s)
	}
	if g < 0 {
		return paramErrorf(method, n, s, g, ErrInvalidArgument, "gate size must be ≥ 0, got %d", g)
	}
	if n >= MinComponentsForGates && g < MinGateSize {
		return paramErrorf(method, n, s, g, ErrInvalidArgument,
			"gate size must be ≥ %d when components ≥ %d, got %d", MinGateSize, MinComponentsForGates, g)
	}
	if !totalFitsInt(n, s, g) {
		return paramErrorf(method, n, s, g, ErrInvalidArgument, "total node count overflows int")
	}

	return nil
}

// totalFitsInt reports whether n·(n−1)/2·g + n·s is representable as an
// int. Inputs are already known to be non-negative.
func totalFitsInt(n, s, g int) bool {
	if n == 0 {
		return true
	}
	if s > math.MaxInt/n {
		return false
	}
	comp := n * s
	if n < MinComponentsForGates {
		return true
	}
	// n·(n−1) can overflow before the halving; divide the even factor first.
	a, b := n, n-1
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}
	if b > math.MaxInt/a {
		return false
	}
	pairs := a * b
	if g > 0 && pairs > math.MaxInt/g {
		return false
	}

	return pairs*g <= math.MaxInt-comp
}

// validateGateFit checks that both halves of a gate of size g fit into
// components of size s. The second half is never smaller than the first, so
// it alone decides. With fewer than two components no gate is wired.
//
// Complexity: O(1) time and space.
func validateGateFit(method string, n, s, g int) error {
	if n < MinComponentsForGates {
		return nil
	}
	if _, second := halfSizes(g); second > s {
		return paramErrorf(method, n, s, g, ErrSizeMismatch,
			"gate half of %d nodes exceeds component size %d", second, s)
	}

	return nil
}

// Validate reports whether Generate would accept (n, s, g) without building
// anything. It applies the same checks in the same order, so the returned
// *ParamError matches what Generate would return apart from its Method.
func Validate(n, s, g int) error {
	if err := validateParams(MethodValidate, n, s, g); err != nil {
		return err
	}

	return validateGateFit(MethodValidate, n, s, g)
}
