package useragent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strings"
)

// Rule is the classification attached to a keyword.
type Rule struct {
	Kind   Kind
	Device Device
}

// Table maps lower-cased tokens to rules. A Table is immutable once loaded
// and safe for concurrent use.
type Table struct {
	rules map[string]Rule
}

// NewTable builds a table from an in-memory map. Tokens are lower-cased.
func NewTable(rules map[string]Rule) *Table {
	t := &Table{rules: make(map[string]Rule, len(rules))}
	for tok, r := range rules {
		t.rules[strings.ToLower(tok)] = r
	}
	return t
}

// LoadTable reads the line format:
//
//	token=KIND
//	token=KIND,DEVICE
//	token=,DEVICE
//	token=
//
// Blank lines and lines starting with '#' are skipped. path is only used in
// error messages.
func LoadTable(r io.Reader, path string) (*Table, error) {
	t := &Table{rules: make(map[string]Rule, 512)}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || raw[0] == '#' {
			continue
		}
		tok, rule, err := parseRuleLine(raw)
		if err != nil {
			return nil, &LoadError{Path: path, Line: line, Err: err}
		}
		if _, dup := t.rules[tok]; dup {
			return nil, &LoadError{Path: path, Line: line, Err: fmt.Errorf("%w: %q", ErrDuplicateToken, tok)}
		}
		t.rules[tok] = rule
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Path: path, Line: line + 1, Err: err}
	}
	return t, nil
}

// LoadTableFS loads a table from a file inside fsys.
func LoadTableFS(fsys fs.FS, path string) (*Table, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}
	defer f.Close()
	return LoadTable(f, path)
}

// LoadTableFile loads a table from the local filesystem.
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}
	defer f.Close()
	return LoadTable(f, path)
}

func openError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &LoadError{Path: path, Err: errors.Join(ErrResourceNotFound, err)}
	}
	return &LoadError{Path: path, Err: err}
}

func parseRuleLine(raw string) (string, Rule, error) {
	tok, value, ok := strings.Cut(raw, "=")
	if !ok {
		return "", Rule{}, ErrMissingSeparator
	}
	tok = strings.ToLower(strings.TrimSpace(tok))
	if tok == "" {
		return "", Rule{}, ErrEmptyToken
	}
	if i := strings.IndexByte(value, '#'); i >= 0 {
		value = value[:i]
	}
	kindName, deviceName, _ := strings.Cut(strings.TrimSpace(value), ",")

	kind, err := ParseKind(strings.TrimSpace(kindName))
	if err != nil {
		return "", Rule{}, err
	}
	rule := Rule{Kind: kind}
	if deviceName = strings.TrimSpace(deviceName); deviceName != "" {
		if deviceName != strings.ToUpper(deviceName) {
			return "", Rule{}, fmt.Errorf("%w: %q", ErrUnknownDevice, deviceName)
		}
		if rule.Device, err = ParseDevice(deviceName); err != nil {
			return "", Rule{}, err
		}
	}
	return tok, rule, nil
}

// Lookup returns the rule for a token. The token must already be lower-cased.
func (t *Table) Lookup(token string) (Rule, bool) {
	r, ok := t.rules[token]
	return r, ok
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.rules)
}

// Rules returns a copy of the underlying map.
func (t *Table) Rules() map[string]Rule {
	return maps.Clone(t.rules)
}

// Equal reports whether both tables hold the same rules.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	return maps.Equal(t.rules, o.rules)
}

// WriteTo serialises the table in canonical form: one rule per line, tokens
// sorted. The output loads back into an equal table.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, tok := range slices.Sorted(maps.Keys(t.rules)) {
		m, err := bw.WriteString(formatRule(tok, t.rules[tok]))
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

func formatRule(tok string, r Rule) string {
	var b strings.Builder
	b.WriteString(tok)
	b.WriteByte('=')
	b.WriteString(r.Kind.String())
	if r.Device != DeviceUnknown {
		b.WriteByte(',')
		b.WriteString(strings.ToUpper(r.Device.String()))
	}
	b.WriteByte('\n')
	return b.String()
}
