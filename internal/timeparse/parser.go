// Package timeparse turns free-form note text into an absolute reminder time.
//
// The parser holds an ordered list of pattern rules. Each rule recognizes one
// phrasing family ("in 10 minutes", "at 9:00", "23 august", ...) over a
// lower-cased copy of the input and computes the absolute instant it refers
// to. The first rule that matches and computes a valid instant wins; a rule
// whose calculation fails is skipped so it never shadows a later rule.
package timeparse

import (
	"errors"
	"log"
	"strings"
	"time"
)

// Result is a successfully extracted time reference.
type Result struct {
	DueAt       time.Time // absolute, truncated to whole seconds
	Description string    // short human phrase, e.g. "in 10 minutes"
}

type Parser struct {
	locale Locale
	rules  []rule
}

// New compiles the rule set for the given locale.
func New(loc Locale) *Parser {
	return &Parser{locale: loc, rules: compileRules(loc)}
}

// Extract scans text for a time reference relative to now. It reports false
// when no rule matches; it never returns an error to the caller.
func (p *Parser) Extract(text string, now time.Time) (Result, bool) {
	lowered := strings.ToLower(text)

	for _, r := range p.rules {
		m := r.re.FindStringSubmatch(lowered)
		if m == nil {
			continue
		}
		due, err := r.calc(m, now)
		if err != nil {
			if !errors.Is(err, errDeferred) {
				log.Printf("timeparse: rule %s matched %q but computed no valid time: %v", r.name, strings.TrimSpace(m[0]), err)
			}
			continue
		}
		return Result{DueAt: due.Truncate(time.Second), Description: r.describe(m)}, true
	}
	return Result{}, false
}

// HasTimeReference reports whether a reminder should be created for text.
// Every category of note is eligible as long as a time is found.
func (p *Parser) HasTimeReference(text string, now time.Time) bool {
	_, ok := p.Extract(text, now)
	return ok
}
