// Package config loads tesseract.yaml, the optional generator configuration.
//
// Example:
//
//	version: "1"
//	key_case: snake
//	output: html_gen.go
//	receiver: e
//	packages: [./examples/site]
//	comments: true
//
// TESSERACT_KEY_CASE and TESSERACT_OUTPUT override the file.
package config
