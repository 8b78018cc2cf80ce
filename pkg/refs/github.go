package refs

import (
	"fmt"
)

// DefaultGitHubURL is the base URL of the public GitHub instance.
const DefaultGitHubURL = "https://github.com"

// githubHashLength is the shortest commit prefix GitHub treats as
// unambiguous.
const githubHashLength = 7

// GitHub parses GitHub-style references: issues, commits, commit ranges
// and user mentions.
type GitHub struct {
	parser
}

var _ Parser = (*GitHub)(nil)

// NewGitHub returns a parser resolving references against the given
// repository on github.com, or on a GitHub Enterprise host when the
// WithBaseURL option is supplied.
func NewGitHub(namespace, project string, opts ...Option) (*GitHub, error) {
	gh := &GitHub{parser{
		name:      "github",
		namespace: namespace,
		project:   project,
		baseURL:   DefaultGitHubURL,
	}}
	for _, opt := range opts {
		opt(&gh.parser)
	}
	if err := validateIdentity(gh.namespace, gh.project, gh.baseURL); err != nil {
		return nil, fmt.Errorf("invalid github provider configuration: %w", err)
	}

	g, err := newGrammar([]kind{
		{
			name: "issues",
			re: compilePattern(blankBefore, optional(namespaceProject),
				numericID("#")),
			build: func(baseURL string, c capture) string {
				return fmt.Sprintf("%s/%s/%s/issues/%s", baseURL, c.namespace, c.project, c.ref)
			},
		},
		{
			name: "commits",
			re: compilePattern(blankBefore, optional(namespaceProject+"@"),
				commitHash(githubHashLength), blankAfter),
			build: func(baseURL string, c capture) string {
				return fmt.Sprintf("%s/%s/%s/commit/%s", baseURL, c.namespace, c.project, c.ref)
			},
		},
		{
			name: "commits_ranges",
			re: compilePattern(blankBefore, optional(namespaceProject+"@"),
				commitRange(githubHashLength)),
			build: func(baseURL string, c capture) string {
				return fmt.Sprintf("%s/%s/%s/compare/%s", baseURL, c.namespace, c.project, c.ref)
			},
		},
		{
			name: "mentions",
			re:   compilePattern(blankBefore, mention),
			build: func(baseURL string, c capture) string {
				return fmt.Sprintf("%s/%s", baseURL, c.ref)
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("invalid github grammar: %w", err)
	}
	gh.grammar = g

	return gh, nil
}

// TagURL implements the Parser contract.
func (gh *GitHub) TagURL(tag string) string {
	return fmt.Sprintf("%s/%s/%s/releases/tag/%s", gh.baseURL, gh.namespace, gh.project, tag)
}
