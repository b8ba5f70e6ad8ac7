// Package render implements placeholder substitution for project templates.
//
// A placeholder is the literal token {{identifier}}, where identifier is one
// or more word characters ([A-Za-z0-9_]). Rendering replaces every
// placeholder with the value bound to its identifier in a single left-to-right
// pass. Replacement text is never rescanned.
//
// An identifier with no binding renders as the empty string and produces one
// warning-level log event per occurrence:
//
//	{"level":"warn","component":"render","placeholder":"owner","message":"Unresolved placeholder"}
//
// Anything that is not a well-formed placeholder, such as a lone brace,
// {{}} or {{ spaced }}, passes through unchanged. Rendering never fails.
package render
