package refs

import (
	"fmt"
	"strings"
)

// DefaultGitLabURL is the base URL of the public GitLab instance.
const DefaultGitLabURL = "https://gitlab.com"

// gitlabHashLength is the shortest commit prefix GitLab treats as
// unambiguous. GitLab requires one character more than GitHub; this is a
// per-provider collision-resistance policy.
const gitlabHashLength = 8

// labelQuoting rewrites a captured label name into the query-string form
// GitLab expects: quotes removed, interior spaces turned into "+".
var labelQuoting = strings.NewReplacer(`"`, "", " ", "+")

// GitLab parses GitLab-style references: issues, merge requests, snippets,
// labels, milestones, commits, commit ranges and user mentions.
type GitLab struct {
	parser
}

var _ Parser = (*GitLab)(nil)

// NewGitLab returns a parser resolving references against the given
// repository on gitlab.com, or on a self-hosted instance when the
// WithBaseURL option is supplied.
func NewGitLab(namespace, project string, opts ...Option) (*GitLab, error) {
	gl := &GitLab{parser{
		name:      "gitlab",
		namespace: namespace,
		project:   project,
		baseURL:   DefaultGitLabURL,
	}}
	for _, opt := range opts {
		opt(&gl.parser)
	}
	if err := validateIdentity(gl.namespace, gl.project, gl.baseURL); err != nil {
		return nil, fmt.Errorf("invalid gitlab provider configuration: %w", err)
	}

	gl.transform = func(kindName string, c capture) capture {
		if strings.HasPrefix(kindName, "labels") {
			c.ref = labelQuoting.Replace(c.ref)
		}
		return c
	}

	issueURL := func(baseURL string, c capture) string {
		return fmt.Sprintf("%s/%s/%s/issues/%s", baseURL, c.namespace, c.project, c.ref)
	}
	// The label_name query parameter addresses labels by name only; a
	// label matched by numeric id shares the same URL shape because GitLab
	// exposes no label-by-id query.
	labelURL := func(baseURL string, c capture) string {
		return fmt.Sprintf("%s/%s/%s/issues?label_name[]=%s", baseURL, c.namespace, c.project, c.ref)
	}
	// A milestone id cannot be recovered from a milestone name, so the
	// by-name kinds point at the milestones index instead of a specific
	// milestone.
	milestonesIndexURL := func(baseURL string, c capture) string {
		return fmt.Sprintf("%s/%s/%s/milestones", baseURL, c.namespace, c.project)
	}

	g, err := newGrammar([]kind{
		{
			name: "issues",
			re: compilePattern(blankBefore, optional(namespaceProject),
				numericID("#")),
			build: issueURL,
		},
		{
			name: "merge_requests",
			re: compilePattern(blankBefore, optional(namespaceProject),
				numericID("!")),
			build: func(baseURL string, c capture) string {
				return fmt.Sprintf("%s/%s/%s/merge_requests/%s", baseURL, c.namespace, c.project, c.ref)
			},
		},
		{
			name: "snippets",
			re: compilePattern(blankBefore, optional(namespaceProject),
				numericID("$")),
			build: func(baseURL string, c capture) string {
				return fmt.Sprintf("%s/%s/%s/snippets/%s", baseURL, c.namespace, c.project, c.ref)
			},
		},
		{
			name: "labels_ids",
			re: compilePattern(blankBefore, optional(namespaceProject),
				numericID("~")),
			build: labelURL,
		},
		{
			name: "labels_one_word",
			re: compilePattern(blankBefore, optional(namespaceProject),
				oneWord("~")),
			build: labelURL,
		},
		{
			name: "labels_multi_word",
			re: compilePattern(blankBefore, optional(namespaceProject),
				multiWord("~")),
			build: labelURL,
		},
		{
			name: "milestones_ids",
			re: compilePattern(blankBefore, optional(namespaceProject),
				numericID("%")),
			build: func(baseURL string, c capture) string {
				return fmt.Sprintf("%s/%s/%s/milestones/%s", baseURL, c.namespace, c.project, c.ref)
			},
		},
		{
			name: "milestones_one_word",
			re: compilePattern(blankBefore, optional(namespaceProject),
				oneWord("%")),
			build: milestonesIndexURL,
		},
		{
			name: "milestones_multi_word",
			re: compilePattern(blankBefore, optional(namespaceProject),
				multiWord("%")),
			build: milestonesIndexURL,
		},
		{
			name: "commits",
			re: compilePattern(blankBefore, optional(namespaceProject+"@"),
				commitHash(gitlabHashLength), blankAfter),
			build: func(baseURL string, c capture) string {
				return fmt.Sprintf("%s/%s/%s/commit/%s", baseURL, c.namespace, c.project, c.ref)
			},
		},
		{
			name: "commits_ranges",
			re: compilePattern(blankBefore, optional(namespaceProject+"@"),
				commitRange(gitlabHashLength)),
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
		return nil, fmt.Errorf("invalid gitlab grammar: %w", err)
	}
	gl.grammar = g

	return gl, nil
}

// TagURL implements the Parser contract.
func (gl *GitLab) TagURL(tag string) string {
	return fmt.Sprintf("%s/%s/%s/tags/%s", gl.baseURL, gl.namespace, gl.project, tag)
}
