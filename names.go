package surf

import "strings"

// Name derivation for the three surfaces. A binding's public name is
// normalized exactly once, when the binding is created, and the derived
// spellings are reused for the binding's whole lifetime.

// PropertyName converts a name to its property spelling: every separator
// followed by a word character collapses into the upper-cased word character.
//
//	PropertyName("my-attr")  // "myAttr"
//	PropertyName("my.attr")  // "myAttr"
//	PropertyName("my_attr")  // "my_attr" (underscore is a word character)
//	PropertyName("myAttr")   // "myAttr"
func PropertyName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	upNext := false
	for _, r := range name {
		if !isWord(r) {
			upNext = true
			continue
		}
		if upNext {
			b.WriteRune(toUpper(r))
			upNext = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// AttributeName converts a name to its attribute spelling: each upper-case
// letter becomes "-" followed by its lower-case form. A capital in the first
// position lowercases without a separator, so "Count" and "count" name the
// same attribute.
//
// Lowercasing every capital (rather than only the first) keeps the mapping
// total and round-trippable with PropertyName for conventional camelCase
// names such as "myLongAttr".
//
//	AttributeName("myAttr")     // "my-attr"
//	AttributeName("myLongAttr") // "my-long-attr"
//	AttributeName("Count")      // "count"
//	AttributeName("plain")      // "plain"
func AttributeName(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 2)
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			if b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EventName converts a name to its event spelling: word characters only,
// lower-cased.
//
//	EventName("myAttr")  // "myattr"
//	EventName("my-attr") // "myattr"
func EventName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if !isWord(r) {
			continue
		}
		if r >= 'A' && r <= 'Z' {
			r = r - 'A' + 'a'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isWord(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
