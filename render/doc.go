// Package render turns arrow polynomials into display strings.
//
// What:
//
//   - Plain:  ASCII form, "-A^4 - A^-4 + A^-2 K_1".
//   - Pretty: Unicode form, "−A⁴ − A⁻⁴ + A⁻² K₁".
//   - Renderer: configurable notation plus optional lipgloss colouring.
//     Results without K terms use Styles.Classical; results with K terms
//     (certainly non-classical knots) use Styles.Virtual.
//
// Options:
//
//   - WithUnicode(bool) selects Pretty over Plain notation (default true).
//   - WithColor(bool) enables lipgloss styling (default false). Callers
//     enable it only when writing to a terminal.
package render
