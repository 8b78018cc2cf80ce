package refs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGitLab(t *testing.T) *GitLab {
	t.Helper()
	gl, err := NewGitLab("acme", "widget")
	require.NoError(t, err)
	return gl
}

func TestNewGitLab(t *testing.T) {
	t.Run("defaults to the public instance", func(t *testing.T) {
		gl := newTestGitLab(t)
		assert.Equal(t, "gitlab", gl.Name())
		assert.Equal(t, "acme", gl.Namespace())
		assert.Equal(t, "widget", gl.Project())
		assert.Equal(t, DefaultGitLabURL, gl.BaseURL())
	})

	t.Run("self-hosted base URL", func(t *testing.T) {
		gl, err := NewGitLab("acme", "widget", WithBaseURL("https://gitlab.example.com"))
		require.NoError(t, err)

		found := gl.FindRefs("merge_requests", "merged !105")
		require.Len(t, found, 1)
		assert.Equal(t, "https://gitlab.example.com/acme/widget/merge_requests/105", found[0].URL())
	})

	t.Run("missing project", func(t *testing.T) {
		_, err := NewGitLab("acme", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid gitlab provider configuration")
	})
}

func TestGitLab_NumericKinds(t *testing.T) {
	gl := newTestGitLab(t)

	tests := []struct {
		name     string
		kind     string
		text     string
		wantText string
		wantURL  string
	}{
		{
			"issue",
			"issues",
			"closes #42",
			"#42",
			"https://gitlab.com/acme/widget/issues/42",
		},
		{
			"merge request",
			"merge_requests",
			"merged !105",
			"!105",
			"https://gitlab.com/acme/widget/merge_requests/105",
		},
		{
			"cross-repo merge request",
			"merge_requests",
			"see group/other!7",
			"group/other!7",
			"https://gitlab.com/group/other/merge_requests/7",
		},
		{
			"snippet",
			"snippets",
			"shared $19",
			"$19",
			"https://gitlab.com/acme/widget/snippets/19",
		},
		{
			"milestone by id",
			"milestones_ids",
			"due %3",
			"%3",
			"https://gitlab.com/acme/widget/milestones/3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := gl.FindRefs(tt.kind, tt.text)
			require.Len(t, found, 1)
			assert.Equal(t, tt.wantText, found[0].Text())
			assert.Equal(t, tt.wantURL, found[0].URL())
		})
	}
}

func TestGitLab_Labels(t *testing.T) {
	gl := newTestGitLab(t)

	t.Run("label by id", func(t *testing.T) {
		found := gl.FindRefs("labels_ids", "tagged ~3")
		require.Len(t, found, 1)
		assert.Equal(t, "~3", found[0].Text())
		assert.Equal(t, "https://gitlab.com/acme/widget/issues?label_name[]=3", found[0].URL())
	})

	t.Run("one-word label", func(t *testing.T) {
		found := gl.FindRefs("labels_one_word", "tagged ~bug, fixed")
		require.Len(t, found, 1)
		assert.Equal(t, "~bug", found[0].Text())
		assert.Equal(t, "https://gitlab.com/acme/widget/issues?label_name[]=bug", found[0].URL())
	})

	t.Run("quoted label keeps no quotes and spaces become plus", func(t *testing.T) {
		found := gl.FindRefs("labels_multi_word", `tagged ~"needs review"`)
		require.Len(t, found, 1)
		assert.Equal(t, `~"needs review"`, found[0].Text())
		assert.Equal(t, "https://gitlab.com/acme/widget/issues?label_name[]=needs+review", found[0].URL())
	})

	t.Run("numeric id does not match the one-word pattern", func(t *testing.T) {
		assert.Empty(t, gl.FindRefs("labels_one_word", "tagged ~3, fixed"))
	})
}

func TestGitLab_Milestones(t *testing.T) {
	gl := newTestGitLab(t)

	t.Run("by-name kinds resolve to the milestones index", func(t *testing.T) {
		// The milestone id cannot be inferred from a name, so by-name
		// references point at the index rather than a specific milestone.
		found := gl.FindRefs("milestones_one_word", "due %beta")
		require.Len(t, found, 1)
		assert.Equal(t, "%beta", found[0].Text())
		assert.Equal(t, "https://gitlab.com/acme/widget/milestones", found[0].URL())

		found = gl.FindRefs("milestones_multi_word", `due %"v2 launch"`)
		require.Len(t, found, 1)
		assert.Equal(t, `%"v2 launch"`, found[0].Text())
		assert.Equal(t, "https://gitlab.com/acme/widget/milestones", found[0].URL())
	})

	t.Run("prefix selector covers all milestone kinds", func(t *testing.T) {
		found := gl.FindRefs("milestones", `due %3, then %beta`)
		require.Len(t, found, 2)
		assert.Equal(t, "%3", found[0].Text())
		assert.Equal(t, "%beta", found[1].Text())
	})
}

func TestGitLab_Commits(t *testing.T) {
	gl := newTestGitLab(t)

	t.Run("eight-character minimum", func(t *testing.T) {
		tests := []struct {
			name      string
			text      string
			wantMatch bool
		}{
			{"seven characters is too short", "5c6b5a5", false},
			{"eight characters matches", "5c6b5a5f", true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				found := gl.FindRefs("commits", tt.text)
				if !tt.wantMatch {
					assert.Empty(t, found)
					return
				}
				require.Len(t, found, 1)
				assert.Equal(t, "https://gitlab.com/acme/widget/commit/"+tt.text, found[0].URL())
			})
		}
	})

	t.Run("eight-character range", func(t *testing.T) {
		found := gl.FindRefs("commits_ranges", "between abc12345...def56789")
		require.Len(t, found, 1)
		assert.Equal(t, "abc12345...def56789", found[0].Text())
		assert.Equal(t, "https://gitlab.com/acme/widget/compare/abc12345...def56789", found[0].URL())
	})
}

func TestGitLab_Mentions(t *testing.T) {
	gl := newTestGitLab(t)

	found := gl.FindRefs("mentions", "thanks @alice")
	require.Len(t, found, 1)
	assert.Equal(t, "@alice", found[0].Text())
	assert.Equal(t, "https://gitlab.com/alice", found[0].URL())

	assert.Empty(t, gl.FindRefs("mentions", "email@alice"))
}

func TestGitLab_TagURL(t *testing.T) {
	gl := newTestGitLab(t)
	assert.Equal(t, "https://gitlab.com/acme/widget/tags/v1.0.0", gl.TagURL("v1.0.0"))
}

func TestGitLab_CompareURL(t *testing.T) {
	gl := newTestGitLab(t)

	url := gl.CompareURL("v1.0.0", "v1.1.0")
	assert.Equal(t, "https://gitlab.com/acme/widget/compare/v1.0.0...v1.1.0", url)

	resolved, err := gl.ResolveURL("commits_ranges", map[string]string{
		"ref": "v1.0.0...v1.1.0",
	})
	require.NoError(t, err)
	assert.Equal(t, resolved, url)
}
