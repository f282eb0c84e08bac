package utils

import (
	"strings"
	"unicode/utf8"
)

// Initials - первые буквы частей ФИО: "Петров И.С." -> "ПИ".
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(r)
	}
	return b.String()
}

// FirstLetter - первая буква первого слова, для аватара клиента.
func FirstLetter(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(fields[0])
	return string(r)
}

func StringPtr(s string) *string {
	return &s
}
