package refs

import (
	"fmt"
	"regexp"
	"strings"
)

// Regex fragments shared by every provider grammar. The boundary fragments
// are consumed by the match rather than asserted (RE2 has no lookbehind);
// the engine trims them back off the reported text.
const (
	// blankBefore anchors a reference to start-of-text or a preceding
	// blank/comma, so a symbol glued to an ordinary word ("email@alice")
	// is not captured.
	blankBefore = `(?:^|[\s,])`

	// blankAfter mirrors blankBefore. Only commit patterns use it: a hex
	// prefix inside a longer alphanumeric token must not count as a hash.
	blankAfter = `(?:[\s,]|$)`

	// namespaceProject captures an optional "namespace/" prefix and a
	// project slug. Both groups are empty-safe; absence falls through to
	// the provider defaults.
	namespaceProject = `(?:(?P<namespace>[-\w]+)/)?(?P<project>[-\w]+)`

	// mention matches an @-handle.
	mention = `@(?P<ref>\w[-\w]*)`
)

// fullHashLength is the longest commit hash a reference may carry (full
// SHA-1).
const fullHashLength = 40

// numericID returns a fragment matching symbol followed by a number.
// Reference numbers are never zero and never zero-padded.
func numericID(symbol string) string {
	return regexp.QuoteMeta(symbol) + `(?P<ref>[1-9]\d*)`
}

// oneWord returns a fragment matching symbol followed by a word containing
// at least one lowercase letter, hyphen, underscore or space, which is what
// tells a textual label like ~bug apart from a numeric id like ~3.
func oneWord(symbol string) string {
	return regexp.QuoteMeta(symbol) + `(?P<ref>\w*[-a-z_ ][-\w]*)`
}

// multiWord returns a fragment matching symbol followed by a double-quoted
// phrase, for labels and milestones whose names contain spaces.
func multiWord(symbol string) string {
	return regexp.QuoteMeta(symbol) + `(?P<ref>"\w[- \w]*")`
}

// commitHash returns a fragment matching min to 40 hex characters. min is a
// per-provider policy: the shortest prefix the provider treats as
// unambiguous.
func commitHash(min int) string {
	return fmt.Sprintf(`(?P<ref>[0-9a-f]{%d,%d})`, min, fullHashLength)
}

// commitRange returns a fragment matching two commit hashes joined by a
// literal "...". The whole range is captured as a single ref.
func commitRange(min int) string {
	return fmt.Sprintf(`(?P<ref>[0-9a-f]{%d,%d}\.\.\.[0-9a-f]{%d,%d})`,
		min, fullHashLength, min, fullHashLength)
}

// optional wraps a fragment so its absence does not fail the match.
func optional(fragment string) string {
	return "(?:" + fragment + ")?"
}

// compilePattern joins fragments into one case-insensitive pattern. Grammar
// fragments are authored in this file, so a pattern that fails to compile
// is a defect caught by MustCompile at provider construction.
func compilePattern(fragments ...string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + strings.Join(fragments, ""))
}
