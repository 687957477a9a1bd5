// Package house implements the building blocks of a modular house build:
// the House product, its Documentation byproduct, the Builder capability,
// and the material tables (variants) that concrete builders are driven by.
//
// A builder owns exactly one in-progress House and Documentation at a time.
// GetHouse and GetDocumentation move the accumulated value to the caller and
// start a fresh, empty one; the builder never touches a handed-over value again.
package house
