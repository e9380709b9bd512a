// Package stats contains statistics calculations and reporting.
package stats

import (
	"errors"
	"fmt"
	"math"
	"time"
	"unicode"
)

// ErrInvalidDuration is returned when a speed metric is requested for a
// non-positive duration.
var ErrInvalidDuration = errors.New("invalid duration")

// CharsPerWord is the standard word length used to derive WPM from CPM.
const CharsPerWord = 5

// CharWeight returns the keystroke cost of r: uppercase letters need shift
// and cost 2, everything else costs 1.
func CharWeight(r rune) int {
	if unicode.IsUpper(r) {
		return 2
	}
	return 1
}

// WeightedCharCount sums CharWeight over every character of words.
func WeightedCharCount(words []string) int {
	total := 0
	for _, word := range words {
		for _, r := range word {
			total += CharWeight(r)
		}
	}
	return total
}

// CPM computes floor(weighted chars / minutes) for the correctly typed words.
func CPM(correctWords []string, durationSeconds float64) (float64, error) {
	if !(durationSeconds > 0) || math.IsInf(durationSeconds, 0) {
		return 0, fmt.Errorf("cpm over %v seconds: %w", durationSeconds, ErrInvalidDuration)
	}
	return cpmFromScore(WeightedCharCount(correctWords), durationSeconds), nil
}

// WPM is CPM divided by CharsPerWord.
func WPM(correctWords []string, durationSeconds float64) (float64, error) {
	cpm, err := CPM(correctWords, durationSeconds)
	if err != nil {
		return 0, err
	}
	return cpm / CharsPerWord, nil
}

// Accuracy returns the weighted share of correct characters as a percentage
// in [0, 100]. It is 0 when nothing was typed correctly.
func Accuracy(correctWords, incorrectWords []string) float64 {
	return accuracyFromScores(WeightedCharCount(correctWords), WeightedCharCount(incorrectWords))
}

func cpmFromScore(score int, durationSeconds float64) float64 {
	return math.Floor(float64(score) / (durationSeconds / 60.0))
}

func accuracyFromScores(correct, incorrect int) float64 {
	if correct == 0 {
		return 0
	}
	return float64(correct) / float64(correct+incorrect) * 100
}

// Score is the reduced result of a finished session.
type Score struct {
	Duration       time.Duration
	CPM            float64
	WPM            float64
	Accuracy       float64
	CorrectWords   int
	IncorrectWords int
	CorrectScore   int
	IncorrectScore int
}

// Compute reduces the partitioned word lists and elapsed time into a Score.
// When the duration is not positive the returned Score still carries
// accuracy and counts, and the error wraps ErrInvalidDuration.
func Compute(correctWords, incorrectWords []string, duration time.Duration) (Score, error) {
	s := Score{
		Duration:       duration,
		CorrectWords:   len(correctWords),
		IncorrectWords: len(incorrectWords),
		CorrectScore:   WeightedCharCount(correctWords),
		IncorrectScore: WeightedCharCount(incorrectWords),
	}
	s.Accuracy = accuracyFromScores(s.CorrectScore, s.IncorrectScore)
	cpm, err := CPM(correctWords, duration.Seconds())
	if err != nil {
		return s, err
	}
	s.CPM = cpm
	s.WPM = cpm / CharsPerWord
	return s, nil
}

// WellDone reports whether the score clears the praise threshold.
func (s Score) WellDone() bool {
	return s.WPM > 50 && s.Accuracy > 95
}
