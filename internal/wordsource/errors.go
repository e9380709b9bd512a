package wordsource

import "errors"

var (
	// ErrUnsupportedLanguage is returned for a language code with no registered corpus.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrEmptyWordSource is returned when the requested range holds no words.
	ErrEmptyWordSource = errors.New("no words available")
)
