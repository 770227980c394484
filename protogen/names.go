package protogen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// A ScalaIdent is a target-language identifier, consisting of a bare name and
// the package it is declared in.
type ScalaIdent struct {
	Name    string
	Package ScalaPackage
}

func (id ScalaIdent) String() string { return string(id.Package) + "." + id.Name }

// newScalaIdent returns the identifier for a descriptor, scoped to the file
// it is declared in.
func newScalaIdent(f *File, d protoreflect.Descriptor) ScalaIdent {
	name := strings.TrimPrefix(string(d.FullName()), string(f.Desc.Package())+".")
	return ScalaIdent{
		Name:    escapeIdent(camelCase(name)),
		Package: f.ScalaPackage,
	}
}

// A ScalaPackage is the fully-qualified package a generated type lives in,
// e.g. "com.example.foo".
type ScalaPackage string

func (p ScalaPackage) String() string { return string(p) }

// Ident returns a ScalaIdent with s as the Name and p as the Package.
func (p ScalaPackage) Ident(s string) ScalaIdent {
	return ScalaIdent{Name: s, Package: p}
}

// scalaKeywords is the set of reserved words that must be back-tick quoted
// when they appear as a bare identifier. This is the target-language analog
// of the Go-keyword escaping a Go-targeting generator performs (naming §4.A):
// escape-if-reserved is the same mechanism, only the keyword table differs.
var scalaKeywords = map[string]bool{
	"abstract": true, "case": true, "catch": true, "class": true,
	"def": true, "do": true, "else": true, "extends": true,
	"false": true, "final": true, "finally": true, "for": true,
	"forSome": true, "if": true, "implicit": true, "import": true,
	"lazy": true, "match": true, "new": true, "null": true,
	"object": true, "override": true, "package": true, "private": true,
	"protected": true, "return": true, "sealed": true, "super": true,
	"this": true, "throw": true, "trait": true, "try": true,
	"true": true, "type": true, "val": true, "var": true,
	"while": true, "with": true, "yield": true,
}

// escapeIdent back-tick quotes s if it collides with a reserved word or does
// not start with a legal bare-identifier character.
func escapeIdent(s string) string {
	if s == "" {
		return "``"
	}
	if scalaKeywords[s] {
		return "`" + s + "`"
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) && r != '_' {
		return "`" + s + "`"
	}
	return s
}

// cleanIdentName converts s to a legal bare identifier by mapping every
// character outside the Unicode L/N categories (and '_') to '_'.
func cleanIdentName(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, s)
}

// baseName returns the last path element of name, with the last dotted
// suffix removed.
func baseName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[:i]
	}
	return name
}

// camelCase converts a proto identifier to CamelCase. An interior underscore
// or dot followed by a lower-case letter is dropped and the letter
// upper-cased; digits are left alone; runs of upper-case-or-underscore
// separated words are preserved. Identical casing rule to the reference Go
// generator's field/type naming, since it is language-agnostic.
func camelCase(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '.' && i+1 < len(s) && isASCIILower(s[i+1]):
		case c == '.':
			b = append(b, '_')
		case c == '_' && (i == 0 || s[i-1] == '.'):
			b = append(b, 'X')
		case c == '_' && i+1 < len(s) && isASCIILower(s[i+1]):
		case isASCIIDigit(c):
			b = append(b, c)
		default:
			if isASCIILower(c) {
				c -= 'a' - 'A'
			}
			b = append(b, c)
			for ; i+1 < len(s) && isASCIILower(s[i+1]); i++ {
				b = append(b, s[i+1])
			}
		}
	}
	return string(b)
}

// lowerCamelCase converts a proto identifier to lowerCamelCase, the
// convention used for accessor/method names (e.g. "my_field" -> "myField").
func lowerCamelCase(s string) string {
	cc := camelCase(s)
	if cc == "" {
		return cc
	}
	r, size := utf8.DecodeRuneInString(cc)
	return string(unicode.ToLower(r)) + cc[size:]
}

func isASCIILower(c byte) bool { return 'a' <= c && c <= 'z' }
func isASCIIDigit(c byte) bool { return '0' <= c && c <= '9' }
