// Package gen writes the Node and Render methods of annotated element types.
//
// Generation uses text/template + go/format. One file per package holds the
// methods of every element type in it, sorted by type name.
//
// Codegen patterns:
//   - Literal and field-backed attributes
//   - Enum variants selected with a switch on the receiver
//   - Text children, converted with string() for named string types
//   - Nested element children, with nil checks for pointers
//   - Slices of either, one child per item
package gen
