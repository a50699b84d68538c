package trace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/memsim/cmpmemsim/pkg/memsys"
)

// Reader parses whitespace-separated trace lines of the form
// "<type> <core_id> <hex_or_dec_addr>", skipping blank lines and lines starting
// with '#'. Type is I (ifetch), L (load), or S (store), case-insensitive.
type Reader struct {
	scanner *bufio.Scanner
	lineNum int
}

// NewReader wraps any io.Reader — a file, stdin, or in tests a strings.Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the next reference, or io.EOF once the input is exhausted.
func (r *Reader) Next() (Reference, error) {
	for r.scanner.Scan() {
		r.lineNum++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return r.parseLine(line)
	}
	if err := r.scanner.Err(); err != nil {
		return Reference{}, err
	}
	return Reference{}, io.EOF
}

func (r *Reader) parseLine(line string) (Reference, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Reference{}, fmt.Errorf("line %d: %w: want 3 fields, got %d", r.lineNum, ErrMalformedLine, len(fields))
	}

	refType, err := parseType(fields[0])
	if err != nil {
		return Reference{}, fmt.Errorf("line %d: %w", r.lineNum, err)
	}

	coreID, err := strconv.Atoi(fields[1])
	if err != nil {
		return Reference{}, fmt.Errorf("line %d: %w: core id %q", r.lineNum, ErrMalformedLine, fields[1])
	}

	addr, err := parseAddr(fields[2])
	if err != nil {
		return Reference{}, fmt.Errorf("line %d: %w: address %q", r.lineNum, ErrMalformedLine, fields[2])
	}

	return Reference{Type: refType, CoreID: coreID, ByteAddr: addr}, nil
}

func parseAddr(s string) (uint64, error) {
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "0x") {
		return strconv.ParseUint(lower[2:], 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}

func parseType(s string) (memsys.RefType, error) {
	switch strings.ToUpper(s) {
	case "I":
		return memsys.IFetch, nil
	case "L":
		return memsys.Load, nil
	case "S":
		return memsys.Store, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}
