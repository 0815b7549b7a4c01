// Package output provides colored terminal output functionality for tint.
//
// The package offers a simple API for printing styled lines to a single
// writer, with one shorthand per bold/plain color combination and a plain
// variant for unstyled text.
//
// Features:
//   - Byte-exact ANSI SGR output (one escape sequence per attribute)
//   - Serialized writes, safe for concurrent callers
//   - Variadic fragments joined before styling
//   - Test-friendly with custom writers
//
// Example usage:
//
//	printer := output.NewPrinter()
//	printer.BoldRed("build failed")
//	printer.Green("all checks passed")
//	printer.Plain("done")
package output
