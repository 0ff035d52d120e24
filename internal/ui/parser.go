package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS parses a small CSS subset: selectors .class, #id, type names and a trailing :hover,
// comma-separated, with blocks of "key: value;". At-rules are skipped. Later rules override
// earlier ones for the same property.
func ParseCSS(data []byte) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	var current []Rule
	atDepth := 0
	for {
		gt, _, name := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				return sheet, fmt.Errorf("ui: parse css: %w", err)
			}
			return sheet, nil
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			if atDepth > 0 {
				atDepth--
			}
		case css.BeginRulesetGrammar:
			current = current[:0]
			if atDepth > 0 {
				continue
			}
			for _, sel := range splitSelectors(p.Values()) {
				current = append(current, Rule{Selector: sel, Props: make(map[string]string)})
			}
		case css.DeclarationGrammar:
			key := strings.ToLower(string(name))
			val := joinValues(p.Values())
			for i := range current {
				current[i].Props[key] = val
			}
		case css.EndRulesetGrammar:
			sheet.Rules = append(sheet.Rules, current...)
			current = nil
		}
	}
}

// splitSelectors turns the selector tokens of a ruleset into trimmed selector strings.
func splitSelectors(tokens []css.Token) []string {
	var out []string
	var b strings.Builder
	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			out = append(out, s)
		}
		b.Reset()
	}
	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken:
			continue
		case css.CommaToken:
			flush()
			continue
		}
		b.Write(t.Data)
	}
	flush()
	return out
}

// joinValues returns a declaration value with its tokens separated by single spaces.
func joinValues(tokens []css.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			continue
		}
		parts = append(parts, string(t.Data))
	}
	return strings.Join(parts, " ")
}
