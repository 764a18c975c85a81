package assist

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Input bounds for the natural-language parser, measured in runes.
const (
	InputMinLength = 2
	InputMaxLength = 500
)

var (
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
	newlineRuns = regexp.MustCompile(`\n+`)
)

// Preprocess normalizes raw free text before validation: trims surrounding
// whitespace, collapses runs of spaces/tabs to a single space, and collapses
// runs of newlines to a single newline.
func Preprocess(input string) string {
	s := strings.TrimSpace(input)
	s = spaceRuns.ReplaceAllString(s, " ")
	s = newlineRuns.ReplaceAllString(s, "\n")
	return s
}

// ValidateInput checks preprocessed text against the parser's input rules.
// It returns an *Error with a request-validation code on failure, or nil.
// A failure here must short-circuit before any model call.
func ValidateInput(input string) error {
	if input == "" {
		return NewError(CodeMissingInput, "할 일을 입력해주세요.")
	}

	n := len([]rune(input))
	if n < InputMinLength {
		return NewError(CodeInvalidInput,
			fmt.Sprintf("최소 %d자 이상 입력해주세요.", InputMinLength))
	}
	if n > InputMaxLength {
		return NewError(CodeInvalidInput,
			fmt.Sprintf("최대 %d자까지 입력 가능합니다. (현재: %d자)", InputMaxLength, n))
	}

	if !hasMeaningfulRune(input) {
		return NewError(CodeInvalidInput, "의미 있는 내용을 입력해주세요.")
	}

	return nil
}

// hasMeaningfulRune reports whether the input contains at least one rune
// outside the whitespace, punctuation, and symbol classes.
func hasMeaningfulRune(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		return true
	}
	return false
}
