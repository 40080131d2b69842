// Package markup composes nested tag strings.
//
// A Node renders as
//
//	<tag key1="v1" key2="v2">
//	<child1>
//	<child2>
//	</tag>
//
// or, when declared void, as <tag key1="v1" />. Attribute values are always
// double-quoted and nothing is escaped: a quote or angle bracket in a value
// or text child is written as is.
//
// Generated Render methods build a fresh Node on every call, so they are
// safe for concurrent use.
package markup
