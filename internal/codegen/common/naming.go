package common

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToTypeName upper-cases the first character of an identifier and leaves the
// rest untouched: "isoAddressClaim" -> "IsoAddressClaim".
// An empty identifier yields an empty name.
func ToTypeName(id string) string {
	if id == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(id)
	return string(unicode.ToUpper(r)) + id[size:]
}

// ToSnakeCase inserts an underscore before every upper-case letter except the
// first character and lower-cases all letters: "EngineSpeed" -> "engine_speed".
// Runs of upper-case letters are not collapsed, so "pgnID" -> "pgn_i_d".
func ToSnakeCase(id string) string {
	var b strings.Builder
	b.Grow(len(id) + 4)
	for i, r := range id {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToLowerCamel lower-cases the first character of an identifier.
func ToLowerCamel(id string) string {
	if id == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(id)
	return string(unicode.ToLower(r)) + id[size:]
}

// ToPascalCase builds an identifier out of a free-text label such as a lookup
// display name: "Non-specific (all)" -> "NonSpecificAll".
// Every character that is not a letter or digit acts as a word separator.
func ToPascalCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var result strings.Builder
	for _, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		result.WriteRune(unicode.ToUpper(r))
		result.WriteString(strings.ToLower(word[size:]))
	}
	return result.String()
}

// SanitizeLeadingDigit prefixes names that start with a digit with "Num"
// to keep identifiers valid in target languages.
func SanitizeLeadingDigit(name string) string {
	if name == "" {
		return ""
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "Num" + name
	}
	return name
}

// IsReserved reports whether a field identifier names a reserved bit range.
// Reserved fields are never emitted as members.
func IsReserved(fieldID string) bool {
	return ToSnakeCase(fieldID) == "reserved"
}
