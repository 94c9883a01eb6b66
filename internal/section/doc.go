// Package section computes the flexural rigidity of layered composite
// cross-sections with the transformed-section method.
//
// A [Slice] is a full-width top layer plus zero or more [Brace] stacks. Each
// brace holds up to three segments (bottom, middle, top) of differing shape
// and modulus. Every segment is scaled by its modular ratio against the
// reference (top) modulus, and the pieces are combined with the
// parallel-axis theorem:
//
//	res, err := section.ComputeSlice(section.Slice{
//		Span:         500,
//		TopThickness: 4,
//		TopModulus:   10000,
//		Braces:       braces,
//	})
//
// All functions are pure. Inputs are validated before any arithmetic and
// failures are reported with [ErrInvalidInput], [ErrInvalidShape],
// [ErrShallowAngle] or [ErrNoActiveSegments].
package section
