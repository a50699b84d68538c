// Package trace parses a line-oriented memory-reference trace into
// memsys-ready values, the way pkg/system/proc reads /proc: a bufio.Scanner over
// an io.Reader, one parse function per line, sentinel errors for malformed input.
package trace
