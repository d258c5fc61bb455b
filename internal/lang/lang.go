package lang

import "strings"

// Code is a response language supported by the bot.
type Code string

const (
	English Code = "en"
	Italian Code = "it"
)

var names = map[string]Code{
	"English":  English,
	"Italiano": Italian,
}

// FromName resolves a language display name (case-insensitive) to its code.
func FromName(name string) (Code, bool) {
	for n, c := range names {
		if strings.EqualFold(n, name) {
			return c, true
		}
	}
	return "", false
}

// DisplayName returns the keyboard label for a code.
func DisplayName(c Code) string {
	for n, code := range names {
		if code == c {
			return n
		}
	}
	return string(c)
}

// Names returns the display names in keyboard order.
func Names() []string {
	return []string{"English", "Italiano"}
}

// Valid reports whether c is a supported language code.
func Valid(c Code) bool {
	return c == English || c == Italian
}

// Detect guesses the language of a message. Italian diacritics mark the text
// as Italian; everything else defaults to English. Only used as a fallback
// before the user picks a language explicitly.
func Detect(text string) Code {
	if strings.ContainsAny(text, "àèéìòù") {
		return Italian
	}
	return English
}
