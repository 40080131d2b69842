// Package annotation parses the html annotations written on Go declarations.
//
// Type and constant annotations are comment directives, one per line:
//
//	//html:tag_name=meta
//	//html:void
//	//html:key_case=lower
//	//html:text=Example Page
//	//html:attr=name=viewport
//
//	const Charset Meta = 0 //html:value=utf-8
//
// Struct fields use the html struct tag:
//
//	Lang  string `html:"attr"`
//	Equiv string `html:"attr,key=http-equiv"`
//	Title Title  `html:"child"`
//	Note  string `html:"-"`
package annotation
