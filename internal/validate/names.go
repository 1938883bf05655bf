package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/specialistvlad/espgen/internal/model"
)

var identifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// reservedIdentifiers are names that would clash with C++ keywords or with
// symbols the generated program already defines.
var reservedIdentifiers = map[string]struct{}{
	"App": {}, "alignas": {}, "alignof": {}, "and": {}, "asm": {}, "auto": {},
	"bool": {}, "break": {}, "case": {}, "catch": {}, "char": {}, "class": {},
	"const": {}, "constexpr": {}, "continue": {}, "default": {}, "delete": {},
	"do": {}, "double": {}, "else": {}, "enum": {}, "explicit": {}, "extern": {},
	"false": {}, "float": {}, "for": {}, "friend": {}, "goto": {}, "if": {},
	"inline": {}, "int": {}, "long": {}, "loop": {}, "namespace": {}, "new": {},
	"not": {}, "nullptr": {}, "operator": {}, "or": {}, "private": {},
	"protected": {}, "public": {}, "register": {}, "return": {}, "setup": {},
	"short": {}, "signed": {}, "sizeof": {}, "static": {}, "struct": {},
	"switch": {}, "template": {}, "this": {}, "throw": {}, "true": {}, "try": {},
	"typedef": {}, "typename": {}, "union": {}, "unsigned": {}, "using": {},
	"virtual": {}, "void": {}, "volatile": {}, "while": {},
}

// Identifier accepts names usable as a variable in the generated program.
func Identifier(v model.Value) (model.Value, error) {
	v, err := NonEmptyString(v)
	if err != nil {
		return model.Value{}, err
	}
	s, _ := v.AsString()
	if !identifierRegex.MatchString(s) {
		return model.Value{}, fmt.Errorf("ID %q must start with a letter or underscore and contain only letters, digits and underscores", s)
	}
	if _, reserved := reservedIdentifiers[s]; reserved {
		return model.Value{}, fmt.Errorf("ID %q is a reserved name", s)
	}
	return v, nil
}

// Hostname accepts up to 63 letters, digits and hyphens.
func Hostname(v model.Value) (model.Value, error) {
	v, err := NonEmptyString(v)
	if err != nil {
		return model.Value{}, err
	}
	s, _ := v.AsString()
	if len(s) > 63 {
		return model.Value{}, errors.New("hostname can only be 63 characters long")
	}
	for _, c := range s {
		if !isAlnum(c) && c != '-' {
			return model.Value{}, errors.New("hostname can only have alphanumeric characters and -")
		}
	}
	return v, nil
}

// DomainName accepts a domain suffix that starts with a single dot, e.g.
// `.local`.
func DomainName(v model.Value) (model.Value, error) {
	v, err := String(v)
	if err != nil {
		return model.Value{}, err
	}
	s, _ := v.AsString()
	if !strings.HasPrefix(s, ".") {
		return model.Value{}, errors.New("domain name must start with .")
	}
	if strings.HasPrefix(s, "..") {
		return model.Value{}, errors.New("domain name must start with single .")
	}
	if len(s) > 253 {
		return model.Value{}, errors.New("domain name can only be 253 characters long")
	}
	for _, c := range s {
		if !isAlnum(c) && c != '.' && c != '-' && c != '_' {
			return model.Value{}, errors.New("domain name can only have alphanumeric characters, ., - and _")
		}
	}
	return v, nil
}

// SSID accepts non-empty network names of at most 31 characters.
func SSID(v model.Value) (model.Value, error) {
	v, err := String(v)
	if err != nil {
		return model.Value{}, err
	}
	s, _ := v.AsString()
	if s == "" {
		return model.Value{}, errors.New("SSID can't be empty")
	}
	if utf8.RuneCountInString(s) > 31 {
		return model.Value{}, errors.New("SSID can't be longer than 31 characters")
	}
	return v, nil
}

func isAlnum(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
