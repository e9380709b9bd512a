package wordsource

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadWords reads a newline-delimited word list, skipping blank lines.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			words = append(words, line)
		}
	}
	return words, scanner.Err()
}

// LoadWords reads the word list stored at path. An empty file is
// ErrEmptyWordSource.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	words, err := ReadWords(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list %s: %w", path, ErrEmptyWordSource)
	}
	return words, nil
}

// WriteWords replaces path with one word per line. Readers never observe a
// partially written file.
func WriteWords(path string, words []string) error {
	return writeAtomic(path, func(w io.Writer) error {
		for _, word := range words {
			if _, err := io.WriteString(w, word+"\n"); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeAtomic(path string, fill func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create word list dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "wordlist-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp word list: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	buf := bufio.NewWriter(tmp)
	if err := fill(buf); err != nil {
		return fmt.Errorf("failed to write word list: %w", err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush word list: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close word list: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace word list: %w", err)
	}
	return nil
}
