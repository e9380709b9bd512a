package wordsource

import (
	"bytes"
	"embed"
)

//go:embed static/*.txt
var staticFS embed.FS

// staticWords returns the embedded word list for lang, or nil when none ships.
func staticWords(lang string) []string {
	data, err := staticFS.ReadFile("static/" + lang + ".txt")
	if err != nil {
		return nil
	}
	words, err := ReadWords(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return words
}
