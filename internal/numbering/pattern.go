// Package numbering holds the closed catalog of record-number formats.
//
// Each Pattern pairs a template, which documents the format and positions the
// location and auto-fill placeholders, with a whole-string grammar. Numbers
// may carry a two-digit volume suffix after VolumeSeparator.
package numbering

import (
	"fmt"
	"regexp"
	"strings"

	dErrors "retention/pkg/domain-errors"
)

const (
	// VolumeSeparator splits a record number from its volume suffix.
	VolumeSeparator = ":"
	// LocationToken marks templates whose numbers start with a location code.
	LocationToken = "KKK"
	// AutoFillToken marks the randomly generated trailing field.
	AutoFillToken = "XXX"

	locationCodeLen = len(LocationToken)
	volumeGrammar   = `\d{2}`
	autoFillRange   = 1000
)

// Pattern is one entry of the number-format catalog.
type Pattern int

const (
	LocationClient Pattern = iota + 1
	LocationClientTask
	LocationAccounting
	Case
	Subject
	Proposal
	Project
)

// Patterns returns the catalog in display order.
func Patterns() []Pattern {
	return []Pattern{
		LocationClient,
		LocationClientTask,
		LocationAccounting,
		Case,
		Subject,
		Proposal,
		Project,
	}
}

// Template returns the structural template, e.g. "KKK-TASK-XXXX".
func (p Pattern) Template() string {
	switch p {
	case LocationClient:
		return "KKK-CLIENT"
	case LocationClientTask:
		return "KKK-TASK-XXXX"
	case LocationAccounting:
		return "KKK-NNNN.NN"
	case Case:
		return "CASE-YYYY-NNNNNN"
	case Subject:
		return "SUBJECT-XXX"
	case Proposal:
		return "P-YYYY-XXX"
	case Project:
		return "PRJ-YYMM-NNN"
	default:
		return ""
	}
}

// grammar is the base rule without anchors or volume suffix.
func (p Pattern) grammar() string {
	switch p {
	case LocationClient:
		return `[A-Z]{3}-[A-Z0-9]{2,12}`
	case LocationClientTask:
		return `[A-Z]{3}-[A-Z0-9]{2,12}-\d{4}`
	case LocationAccounting:
		return `[A-Z]{3}-\d{4}\.\d{2}`
	case Case:
		return `CASE-\d{4}-\d{6}`
	case Subject:
		return `[A-Z]{2,8}-\d{3}`
	case Proposal:
		return `P-\d{4}-\d{3}`
	case Project:
		return `PRJ-\d{2}(?:0[1-9]|1[0-2])-[A-Z0-9]{3}`
	default:
		return ""
	}
}

// Name is the stable identifier used in logs and metrics.
func (p Pattern) Name() string {
	switch p {
	case LocationClient:
		return "location_client"
	case LocationClientTask:
		return "location_client_task"
	case LocationAccounting:
		return "location_accounting"
	case Case:
		return "case"
	case Subject:
		return "subject"
	case Proposal:
		return "proposal"
	case Project:
		return "project"
	default:
		return "unknown"
	}
}

func (p Pattern) String() string {
	return p.Template()
}

func (p Pattern) IsValid() bool {
	_, ok := compiled[p]
	return ok
}

type grammars struct {
	base       *regexp.Regexp
	withVolume *regexp.Regexp
}

var compiled = compileCatalog()

func compileCatalog() map[Pattern]grammars {
	out := make(map[Pattern]grammars, len(Patterns()))
	for _, p := range Patterns() {
		out[p] = grammars{
			base:       regexp.MustCompile(`^(?:` + p.grammar() + `)$`),
			withVolume: regexp.MustCompile(`^(?:` + p.grammar() + `)` + regexp.QuoteMeta(VolumeSeparator) + volumeGrammar + `$`),
		}
	}
	return out
}

// ParsePattern resolves a template string against the catalog.
func ParsePattern(template string) (Pattern, error) {
	for _, p := range Patterns() {
		if p.Template() == template {
			return p, nil
		}
	}
	return 0, dErrors.New(dErrors.CodeInvalidArgument, fmt.Sprintf("unknown number pattern %q", template))
}

// Match reports whether candidate is a whole-string match for the pattern.
// A candidate containing VolumeSeparator must end in exactly two digits after
// it; otherwise the base grammar applies.
func (p Pattern) Match(candidate string) bool {
	g, ok := compiled[p]
	if !ok {
		return false
	}
	if strings.Contains(candidate, VolumeSeparator) {
		return g.withVolume.MatchString(candidate)
	}
	return g.base.MatchString(candidate)
}

// HasLocation reports whether numbers of this pattern embed a location code.
func (p Pattern) HasLocation() bool {
	return strings.Contains(p.Template(), LocationToken)
}

// MatchesLocation checks that number starts with locationCode for patterns
// embedding a location placeholder. The comparison is case-sensitive.
func (p Pattern) MatchesLocation(locationCode, number string) bool {
	if !p.HasLocation() {
		return true
	}
	if len(number) < locationCodeLen {
		return false
	}
	return number[:locationCodeLen] == locationCode
}

// HasAutoFill reports whether the template ends in a generated field.
func (p Pattern) HasAutoFill() bool {
	return strings.Index(p.Template(), AutoFillToken) > 0
}

// AutoFillWidth is the digit width of the generated field, or 0 when the
// pattern has none.
func (p Pattern) AutoFillWidth() int {
	tmpl := p.Template()
	idx := strings.Index(tmpl, AutoFillToken)
	if idx <= 0 {
		return 0
	}
	return len(tmpl) - idx
}

// FillAutoGenField appends the generated field to base: the template character
// preceding the token, then a value from [0, 999] zero-padded to
// AutoFillWidth. Patterns without the token return base unchanged.
func (p Pattern) FillAutoGenField(base string, rnd RandomSource) string {
	tmpl := p.Template()
	idx := strings.Index(tmpl, AutoFillToken)
	if idx <= 0 {
		return base
	}
	separator := tmpl[idx-1 : idx]
	width := len(tmpl) - idx
	return base + separator + fmt.Sprintf("%0*d", width, rnd.IntN(autoFillRange))
}
