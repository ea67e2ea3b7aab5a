package monoid

import (
	"strings"
	"unicode/utf8"

	"github.com/arloliu/monoidmap/internal/hash"
)

// Text is a string under concatenation.
//
// Prefixes, suffixes and overlaps are computed on rune boundaries, so none of
// the reduction methods ever splits a UTF-8 sequence of valid input.
type Text string

var (
	_ LeftGCD[Text]        = Text("")
	_ RightGCD[Text]       = Text("")
	_ OverlappingGCD[Text] = Text("")
)

// Empty returns the empty string.
func (Text) Empty() Text { return "" }

// IsEmpty reports whether t is the empty string.
func (t Text) IsEmpty() bool { return t == "" }

// Equal reports whether t and o are the same string.
func (t Text) Equal(o Text) bool { return t == o }

// Combine returns the concatenation of t and o.
func (t Text) Combine(o Text) Text { return t + o }

// String returns t as a plain string.
func (t Text) String() string { return string(t) }

// StripPrefix returns o without the leading t.
func (t Text) StripPrefix(o Text) (Text, bool) {
	rest, ok := strings.CutPrefix(string(o), string(t))
	return Text(rest), ok
}

// StripSuffix returns o without the trailing t.
func (t Text) StripSuffix(o Text) (Text, bool) {
	rest, ok := strings.CutSuffix(string(o), string(t))
	return Text(rest), ok
}

// CommonPrefix returns the longest common prefix of t and o.
func (t Text) CommonPrefix(o Text) Text {
	n := min(len(t), len(o))
	i := 0
	for i < n && t[i] == o[i] {
		i++
	}
	for i > 0 && i < len(t) && !utf8.RuneStart(t[i]) {
		i--
	}

	return t[:i]
}

// CommonSuffix returns the longest common suffix of t and o.
func (t Text) CommonSuffix(o Text) Text {
	n := min(len(t), len(o))
	j := 0
	for j < n && t[len(t)-1-j] == o[len(o)-1-j] {
		j++
	}
	for j > 0 && !utf8.RuneStart(t[len(t)-j]) {
		j--
	}

	return t[len(t)-j:]
}

// StripOverlap finds the longest suffix of t that is also a prefix of o.
func (t Text) StripOverlap(o Text) (Text, Text, Text) {
	for n := min(len(t), len(o)); n > 0; n-- {
		if !utf8.RuneStart(o[0]) || (n < len(o) && !utf8.RuneStart(o[n])) {
			continue
		}
		if strings.HasSuffix(string(t), string(o[:n])) {
			return t[:len(t)-n], o[:n], o[n:]
		}
	}

	return t, "", o
}

// AppendBinary appends the bytes of t prefixed with their uvarint length.
func (t Text) AppendBinary(dst []byte) ([]byte, error) {
	return hash.AppendBytes(dst, []byte(t)), nil
}
