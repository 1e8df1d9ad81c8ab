package useragent

import (
	"iter"
	"regexp"
	"strconv"
	"unicode/utf8"
)

// tokenPattern captures an entity name and, optionally, the version that
// follows it after a separator. Group 1 is the name, 2 the major digits and
// 3 the minor digits. RE2 guarantees linear-time matching.
var tokenPattern = regexp.MustCompile(
	`([A-Za-z][A-Za-z0-9]*(?:[-_+][A-Za-z][A-Za-z0-9]*)*)` +
		`(?:\s*[-/,:+_=\s]\s*(\d+)(?:[._](\d+))?[A-Za-z]*)?`,
)

// Token is a single tokenizer match.
type Token struct {
	Name string
	// Next is the raw character right after Name, or ';' at end of input.
	Next rune
	// Major and Minor hold the digits as written; both empty when the token
	// has no version.
	Major string
	Minor string
}

// HasVersion reports whether the token carried a version.
func (t Token) HasVersion() bool { return t.Major != "" }

// version converts the captured digits. A missing minor defaults to zero;
// digits that overflow uint32 drop the version for this token only.
func (t Token) version() (major, minor uint32, ok bool) {
	if t.Major == "" {
		return 0, 0, false
	}
	mj, err := strconv.ParseUint(t.Major, 10, 32)
	if err != nil {
		return 0, 0, false
	}
	var mn uint64
	if t.Minor != "" {
		if mn, err = strconv.ParseUint(t.Minor, 10, 32); err != nil {
			return 0, 0, false
		}
	}
	return uint32(mj), uint32(mn), true
}

// Tokens lazily scans ua from left to right. The sequence can be ranged over
// any number of times.
func Tokens(ua string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		pos := 0
		for pos < len(ua) {
			m := tokenPattern.FindStringSubmatchIndex(ua[pos:])
			if m == nil {
				return
			}
			tok := Token{Name: ua[pos+m[2] : pos+m[3]], Next: ';'}
			if end := pos + m[3]; end < len(ua) {
				tok.Next, _ = utf8.DecodeRuneInString(ua[end:])
			}
			if m[4] >= 0 {
				tok.Major = ua[pos+m[4] : pos+m[5]]
			}
			if m[6] >= 0 {
				tok.Minor = ua[pos+m[6] : pos+m[7]]
			}
			if !yield(tok) {
				return
			}
			pos += m[1]
		}
	}
}
