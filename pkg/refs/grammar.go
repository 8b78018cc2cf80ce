package refs

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"
)

// Parser extracts references from free-form text for one hosting provider.
//
// Implementations are immutable after construction and safe for concurrent
// use. The interface requires TagURL and CompareURL from every provider, so
// a provider that cannot produce them fails to compile rather than silently
// returning placeholder URLs.
type Parser interface {
	// Name returns the provider identifier, e.g. "github".
	Name() string

	// Namespace returns the configured default namespace.
	Namespace() string

	// Project returns the configured default project.
	Project() string

	// BaseURL returns the provider base URL (scheme and host).
	BaseURL() string

	// Kinds returns the declared kind names in grammar order.
	Kinds() []string

	// FindRefs returns every reference in text matching the kind selector,
	// in match order. An exact kind name runs that kind alone; any other
	// selector is treated as a prefix over the provider's declared kind
	// order and the per-kind results are concatenated in that order. A
	// selector matching nothing yields an empty slice, not an error.
	FindRefs(selector, text string) []Ref

	// ResolveURL builds the URL for a kind from a map of captured groups
	// ("ref", and optionally "namespace" and "project"), applying provider
	// defaulting and kind-specific post-processing. It returns an error
	// for a kind the grammar does not declare.
	ResolveURL(kindName string, groups map[string]string) (string, error)

	// TagURL returns the permalink for a release tag.
	TagURL(tag string) string

	// CompareURL returns the URL comparing two revisions or tags.
	CompareURL(base, target string) string
}

// capture holds the named groups extracted from a single pattern match.
// ref is always set; namespace and project are set only when the matched
// text carried an explicit "namespace/project" prefix.
type capture struct {
	ref       string
	namespace string
	project   string
}

// urlBuilder renders a resolved URL from a defaulted capture. Each kind
// supplies its own builder, so a builder can only consume the groups its
// pattern produces plus the provider defaults.
type urlBuilder func(baseURL string, c capture) string

// kind couples a reference category with its compiled pattern and URL
// builder. Both are fixed for the lifetime of the provider.
type kind struct {
	name  string
	re    *regexp.Regexp
	build urlBuilder
}

// grammar is the ordered kind table a provider owns. The slice order is the
// declared kind order used by prefix selectors; the index is a lookup
// shortcut for exact selectors.
type grammar struct {
	kinds []kind
	index map[string]int
}

// newGrammar assembles and validates a kind table. Violations of the
// grammar contract (no kinds, duplicate or empty names, a missing pattern
// or builder, a pattern without the ref group) are reported together and
// fail the provider construction.
func newGrammar(kinds []kind) (*grammar, error) {
	var result *multierror.Error

	if len(kinds) == 0 {
		result = multierror.Append(result, errors.New("grammar declares no kinds"))
	}

	index := make(map[string]int, len(kinds))
	for i, k := range kinds {
		if k.name == "" {
			result = multierror.Append(result, fmt.Errorf("kind %d: empty name", i))
			continue
		}
		if _, ok := index[k.name]; ok {
			result = multierror.Append(result, fmt.Errorf("kind %q: declared twice", k.name))
			continue
		}
		index[k.name] = i

		if k.re == nil {
			result = multierror.Append(result, fmt.Errorf("kind %q: no pattern", k.name))
		} else if k.re.SubexpIndex("ref") < 0 {
			result = multierror.Append(result,
				fmt.Errorf("kind %q: pattern does not capture the ref group", k.name))
		}
		if k.build == nil {
			result = multierror.Append(result, fmt.Errorf("kind %q: no URL builder", k.name))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &grammar{kinds: kinds, index: index}, nil
}

// selectKinds resolves a selector to the kinds to run. Note that the empty
// selector is a prefix of every kind name and therefore runs the whole
// grammar.
func (g *grammar) selectKinds(selector string) []kind {
	if i, ok := g.index[selector]; ok {
		return g.kinds[i : i+1]
	}
	var selected []kind
	for _, k := range g.kinds {
		if strings.HasPrefix(k.name, selector) {
			selected = append(selected, k)
		}
	}
	return selected
}

// parser is the matching engine shared by all providers. Concrete providers
// embed it and contribute their kind table, identity and optional capture
// transform at construction.
type parser struct {
	name      string
	namespace string
	project   string
	baseURL   string
	grammar   *grammar

	// transform post-processes a capture for a given kind before URL
	// construction (e.g. GitLab label quoting rules). May be nil.
	transform func(kindName string, c capture) capture
}

func (p *parser) Name() string {
	return p.name
}

func (p *parser) Namespace() string {
	return p.namespace
}

func (p *parser) Project() string {
	return p.project
}

func (p *parser) BaseURL() string {
	return p.baseURL
}

// Kinds implements the Parser contract.
func (p *parser) Kinds() []string {
	names := make([]string, len(p.grammar.kinds))
	for i, k := range p.grammar.kinds {
		names[i] = k.name
	}
	return names
}

// FindRefs implements the Parser contract.
func (p *parser) FindRefs(selector, text string) []Ref {
	var found []Ref
	for _, k := range p.grammar.selectKinds(selector) {
		names := k.re.SubexpNames()
		for _, m := range k.re.FindAllStringSubmatch(text, -1) {
			c := captureFrom(names, m)
			found = append(found, NewRef(trimBoundary(m[0]), p.buildURL(k, c)))
		}
	}
	return found
}

// ResolveURL implements the Parser contract.
func (p *parser) ResolveURL(kindName string, groups map[string]string) (string, error) {
	i, ok := p.grammar.index[kindName]
	if !ok {
		return "", fmt.Errorf("unknown reference kind: %s", kindName)
	}
	return p.buildURL(p.grammar.kinds[i], capture{
		ref:       groups["ref"],
		namespace: groups["namespace"],
		project:   groups["project"],
	}), nil
}

// CompareURL implements the Parser contract. The comparison link is a
// synthetic commits_ranges reference resolved through the normal template
// path, which keeps its format consistent with ranges found in text.
func (p *parser) CompareURL(base, target string) string {
	url, err := p.ResolveURL("commits_ranges", map[string]string{
		"ref": base + "..." + target,
	})
	if err != nil {
		// Every grammar in this package declares commits_ranges; reaching
		// this is a defect in the grammar itself.
		panic(err)
	}
	return url
}

// buildURL applies provider defaulting, then the provider transform, then
// the kind's own builder. The base URL is always the provider's own:
// cross-repository references change the path, never the host.
func (p *parser) buildURL(k kind, c capture) string {
	if c.namespace == "" {
		c.namespace = p.namespace
	}
	if c.project == "" {
		c.project = p.project
	}
	if p.transform != nil {
		c = p.transform(k.name, c)
	}
	return k.build(p.baseURL, c)
}

// captureFrom maps a submatch slice onto the named groups the engine knows
// about. Groups a pattern does not declare stay empty.
func captureFrom(names, match []string) capture {
	var c capture
	for i, name := range names {
		if i == 0 || i >= len(match) {
			continue
		}
		switch name {
		case "ref":
			c.ref = match[i]
		case "namespace":
			c.namespace = match[i]
		case "project":
			c.project = match[i]
		}
	}
	return c
}

// trimBoundary strips the consumed blank-before/blank-after characters from
// a matched substring.
func trimBoundary(s string) string {
	return strings.Trim(s, " \t\r\n,")
}

// Option configures a provider at construction time.
type Option func(*parser)

// WithBaseURL points the provider at a self-hosted instance instead of the
// public one. A trailing slash is trimmed.
func WithBaseURL(baseURL string) Option {
	return func(p *parser) {
		p.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// slugPattern is the charset namespaces and projects may use in URL paths.
var slugPattern = regexp.MustCompile(`^[-\w]+$`)

// validateIdentity checks the provider identity fields before the grammar
// is assembled.
func validateIdentity(namespace, project, baseURL string) error {
	return validation.Errors{
		"namespace": validation.Validate(namespace,
			validation.Required,
			validation.Match(slugPattern)),
		"project": validation.Validate(project,
			validation.Required,
			validation.Match(slugPattern)),
		"base_url": validation.Validate(baseURL,
			validation.Required,
			validation.By(checkHTTPURL)),
	}.Filter()
}

func checkHTTPURL(value interface{}) error {
	s, _ := value.(string)
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return errors.New("must be an http(s) URL")
	}
	return nil
}
