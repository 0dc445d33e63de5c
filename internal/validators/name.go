// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MinNameLength is the minimum number of characters of a valid name.
	MinNameLength = 5

	// MaxNameLength is the length sanitized input is truncated to.
	MaxNameLength = 25
)

// nameAllowList matches names made only of Latin letters, Spanish accented
// vowels, ñ/Ñ and whitespace. RE2's \s is ASCII only; \v, \p{Zs}, the line
// and paragraph separators and U+FEFF widen it to the whitespace set of
// JavaScript's \s. U+0085 is trimmed at the edges but, as in JavaScript, is
// not whitespace inside a name.
var nameAllowList = regexp.MustCompile(`^[a-zA-ZñÑáéíóúÁÉÍÓÚ\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]*$`)

// dangerousPatterns is the deny-list run against the original input.
// It is a heuristic on top of the allow-list, not a guarantee.
//
// (?i) uses Unicode simple case folding, so "ſ" (U+017F) matches "s" and
// "<ſcript" is reported as dangerous content. Lower-casing the input first
// would leave "ſ" alone and reject it only as an invalid character.
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<\s*script`),
	regexp.MustCompile(`(?i)<\s*/\s*script`),
	regexp.MustCompile(`(?i)javascript\s*:`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
	regexp.MustCompile(`(?i)<\s*img`),
	regexp.MustCompile(`(?i)<\s*iframe`),
}

var (
	markupStripper  = strings.NewReplacer("<", "", ">", "", "&", "")
	bracketStripper = strings.NewReplacer("<", "", ">", "")
)

// Sanitize removes '<', '>' and '&', trims surrounding whitespace and
// truncates the result to [MaxNameLength] characters.
//
// Sanitize is total and idempotent: the truncated value is trimmed again so
// that a cut landing right after a space does not leave trailing whitespace.
func Sanitize(raw string) string {
	s := strings.TrimSpace(markupStripper.Replace(raw))
	if utf8.RuneCountInString(s) <= MaxNameLength {
		return s
	}

	runes := []rune(s)
	return strings.TrimSpace(string(runes[:MaxNameLength]))
}

// StripAngleBrackets removes '<' and '>' only. It mirrors the filter applied
// to the input field while the user types.
func StripAngleBrackets(raw string) string {
	return bracketStripper.Replace(raw)
}

// ContainsDangerousContent reports whether raw matches any deny-listed
// pattern: an opening or closing script tag, a javascript: scheme, an inline
// event handler attribute, an img tag or an iframe tag. Matching is case
// insensitive and runs on the original, unsanitized input.
func ContainsDangerousContent(raw string) bool {
	for _, p := range dangerousPatterns {
		if p.MatchString(raw) {
			return true
		}
	}
	return false
}

// Validate decides whether sanitized may become a name entry text.
// sanitized must be Sanitize(original).
//
// Rules are evaluated in order and the first failure is returned:
//  1. empty sanitized value: [ErrEmptyName];
//  2. deny-listed pattern in original: [ErrDangerousContent];
//  3. characters outside the allow-list: [ErrInvalidCharacters];
//  4. fewer than [MinNameLength] characters: [ErrTooShort].
//
// On success the sanitized value is returned as the canonical text.
func Validate(sanitized, original string) (string, error) {
	if sanitized == "" {
		return "", ErrEmptyName
	}
	if ContainsDangerousContent(original) {
		return "", ErrDangerousContent
	}
	if !nameAllowList.MatchString(sanitized) {
		return "", ErrInvalidCharacters
	}
	if utf8.RuneCountInString(sanitized) < MinNameLength {
		return "", ErrTooShort
	}

	return sanitized, nil
}

// Check runs the whole pipeline on raw user input.
func Check(raw string) (string, error) {
	return Validate(Sanitize(raw), raw)
}
