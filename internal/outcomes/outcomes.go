// Package outcomes reads and writes contest outcome logs as text.
//
// Each line holds the seats that placed first, 1-based and joined by "+" or
// ",", and an optional repeat count:
//
//	# The Hand, every board
//	1    1365284
//	2    314904
//	1+2  32116
//
// The seat field may be percent-encoded ("1%2B2") so records can be pasted
// from URL query strings. "none" or "0" records a contest nobody won.
package outcomes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/lox/wincounter/internal/fileutil"
	"github.com/lox/wincounter/wins"
)

// ErrInvalidRecord is returned for lines that cannot be parsed.
var ErrInvalidRecord = errors.New("invalid outcome record")

// ParseFlag parses a seat list such as "1+3" into a flag.
func ParseFlag(s string) (wins.Flag, error) {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidRecord, s, err)
	}
	decoded = strings.TrimSpace(decoded)
	if decoded == "none" || decoded == "0" {
		return 0, nil
	}

	var flag wins.Flag
	for _, part := range strings.FieldsFunc(decoded, func(r rune) bool { return r == '+' || r == ',' }) {
		seat, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, fmt.Errorf("%w: seat %q is not a number", ErrInvalidRecord, part)
		}
		if seat < 1 || seat > wins.MaxPlayers {
			return 0, fmt.Errorf("%w: seat %d outside 1-%d", ErrInvalidRecord, seat, wins.MaxPlayers)
		}
		flag |= wins.FromIndex(seat - 1)
	}
	if flag == 0 {
		return 0, fmt.Errorf("%w: empty seat list %q", ErrInvalidRecord, s)
	}
	return flag, nil
}

// FormatFlag is the inverse of ParseFlag.
func FormatFlag(f wins.Flag) string {
	return f.String()
}

// Read parses records from r into a new log.
func Read(r io.Reader) (*wins.Log, error) {
	l := &wins.Log{}
	if err := ReadInto(l, r); err != nil {
		return nil, err
	}
	return l, nil
}

// ReadInto parses records from r and appends them to l. On error l may
// already hold the records before the failing line.
func ReadInto(l *wins.Log, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) > 2 {
			return fmt.Errorf("line %d: %w: expected seats and count, got %d fields", lineNo, ErrInvalidRecord, len(fields))
		}

		flag, err := ParseFlag(fields[0])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		count := 1
		if len(fields) == 2 {
			count, err = strconv.Atoi(fields[1])
			if err != nil || count < 1 {
				return fmt.Errorf("line %d: %w: count %q must be a positive integer", lineNo, ErrInvalidRecord, fields[1])
			}
		}
		l.AddN(flag, count)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read outcomes: %w", err)
	}
	return nil
}

// ReadFile reads a log from a file.
func ReadFile(path string) (*wins.Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open outcomes: %w", err)
	}
	defer f.Close()

	l, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Write encodes l, collapsing runs of the same outcome into one record.
// Reading the output back yields the same sequence.
func Write(w io.Writer, l *wins.Log) error {
	flags := l.Flags()
	for i := 0; i < len(flags); {
		j := i + 1
		for j < len(flags) && flags[j] == flags[i] {
			j++
		}
		if _, err := fmt.Fprintf(w, "%s %d\n", FormatFlag(flags[i]), j-i); err != nil {
			return fmt.Errorf("write outcomes: %w", err)
		}
		i = j
	}
	return nil
}

// WriteFile writes l to path, replacing any existing file atomically.
func WriteFile(path string, l *wins.Log) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Write(w, l)
	})
}
