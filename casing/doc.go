// Package casing classifies identifiers by naming convention, splits them into
// words and reassembles words into a target convention.
//
// Supported styles:
//   - PascalCase:         ExampleValue
//   - TitleSnakeCase:     Example_Value
//   - ScreamingSnakeCase: EXAMPLE_VALUE
//   - SnakeCase:          example_value
//   - LowerCase:          examplevalue
//
// Classification tries the styles in the order above and the first match
// wins. Tokenize followed by Convert into the classified style reproduces the
// original identifier.
package casing
