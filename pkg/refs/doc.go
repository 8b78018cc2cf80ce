// Package refs extracts structured references from free-form text (commit
// messages, changelog entries) and resolves each one into a canonical
// text/URL pair pointing at a hosting provider.
//
// A reference is a token like "#42", "owner/repo#7", "!105", "~bug",
// `~"needs review"`, "%v2", "@alice", "4f2a9c1" or
// "4f2a9c1...8b3d07e". Each hosting provider defines its own grammar: the
// set of reference kinds it recognizes, the regular expression per kind,
// and the rule that turns a match into a URL. All grammars are assembled
// from the same pattern fragments so boundary and capture semantics stay
// consistent across providers.
//
// # Core Concepts
//
//  1. Ref: immutable (text, URL) pair produced per match. Equality is
//     structural; a Ref carries no link back to the grammar that made it.
//
//  2. Kind: a named reference category ("issues", "commits_ranges", ...)
//     bound to exactly one compiled pattern and one URL builder for the
//     lifetime of the provider instance.
//
//  3. Parser: the provider contract. GitHub and GitLab are the two
//     implementations; both share the same matching engine and differ only
//     in their kind tables and URL shapes.
//
// # Usage
//
//	p, err := refs.NewGitLab("gitlab-org", "gitlab")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range p.FindRefs("issues", "Fixes #42 and other/repo#7") {
//	    fmt.Println(r)
//	}
//
// Kind selectors are prefix-based: FindRefs("labels", text) runs
// labels_ids, labels_one_word and labels_multi_word in declared order and
// concatenates the results. An unknown selector yields an empty slice, not
// an error.
//
// # Concurrency
//
// A provider is immutable after construction. Every method performs
// read-only access to compiled patterns, so a single instance is safe for
// concurrent use from any number of goroutines.
//
// The package performs syntactic extraction and URL synthesis only; it
// never contacts the provider to check that a reference exists.
package refs
