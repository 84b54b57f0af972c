package scan_test

import (
	"testing"

	"github.com/rasadeyan/arachni/pkg/cookie"
	"github.com/rasadeyan/arachni/pkg/element"
	"github.com/rasadeyan/arachni/pkg/scan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownerURL = "http://target.example.com/page"

func newCookie(t *testing.T, opts ...cookie.Option) *cookie.Cookie {
	t.Helper()
	c, err := cookie.New(ownerURL, map[string]any{"name": "session", "value": "sid-123"}, opts...)
	require.NoError(t, err)
	return c
}

func newPage() *element.Page {
	return &element.Page{
		URL: ownerURL,
		Links: []*element.Link{
			element.NewLink("http://target.example.com/search", map[string]string{"q": ""}),
			element.NewLink("http://target.example.com/about", nil), // zero inputs, skipped
		},
		Forms: []*element.Form{
			element.NewForm("http://target.example.com/login", "POST",
				map[string]string{"user": "", "pass": ""}),
		},
	}
}

func TestMutationsBaseline(t *testing.T) {
	variants := scan.Mutations(newCookie(t), "--payload--", scan.Options{})
	require.Len(t, variants, 4, "one variant per baseline strategy")

	expected := []string{
		"--payload--",
		"sid-123--payload--",
		"--payload--\x00",
		"sid-123--payload--\x00",
	}
	for i, v := range variants {
		require.NotNil(t, v.Cookie)
		assert.Equal(t, "session", v.Cookie.Input().Key)
		assert.Equal(t, expected[i], v.Cookie.Input().Value)
		assert.NotEmpty(t, v.Meta().Altered)
		assert.False(t, v.Meta().ScopeOverride)
	}
}

func TestMutationsIndependentCopies(t *testing.T) {
	c := newCookie(t)
	variants := scan.Mutations(c, "--payload--", scan.Options{})

	variants[0].Cookie.SetInput(element.Input{Key: "tampered", Value: "x"})

	assert.Equal(t, "session", c.Input().Key, "source cookie untouched")
	assert.Equal(t, "session", variants[1].Cookie.Input().Key, "siblings untouched")
}

func TestMutationsDeduplicates(t *testing.T) {
	// With an empty original value, straight/append and null/append-null
	// collapse pairwise into identical wire forms.
	c, err := cookie.New(ownerURL, map[string]any{"name": "session", "value": ""})
	require.NoError(t, err)

	variants := scan.Mutations(c, "--payload--", scan.Options{})
	assert.Len(t, variants, 2)
}

func TestMutationsParamFlip(t *testing.T) {
	variants := scan.Mutations(newCookie(t), "--payload--", scan.Options{ParamFlip: true})
	require.Len(t, variants, 5, "param flip adds exactly one variant")

	flip := variants[4]
	require.NotNil(t, flip.Cookie)
	assert.Equal(t, "--payload--", flip.Cookie.Input().Key)
	assert.Equal(t, element.PlaceholderSeed, flip.Cookie.Input().Value)
	assert.True(t, flip.Meta().ScopeOverride, "flipped names bypass scope checks")
}

func TestMutationsExtensivePropagation(t *testing.T) {
	c := newCookie(t, cookie.WithPage(newPage()))
	variants := scan.Mutations(c, "--payload--", scan.Options{Extensive: true})

	// 4 baseline variants plus 4 x 2 eligible page elements; the
	// zero-input link is skipped.
	require.Len(t, variants, 4+4*2)

	var propagated []scan.Variant
	for _, v := range variants {
		if v.Element != nil {
			propagated = append(propagated, v)
		}
	}
	require.Len(t, propagated, 8)

	for _, v := range propagated {
		assert.NotEmpty(t, v.Element.Inputs(), "zero-input elements are never propagated")
		require.Len(t, v.Element.Options().Cookies, 1)
		assert.Contains(t, v.Element.Options().Cookies, "session")
		assert.NotEmpty(t, v.Meta().Altered)

		for name, value := range v.Element.Inputs() {
			assert.NotEmpty(t, value, "empty input %q must be filled with a placeholder", name)
		}
	}
}

func TestMutationsExtensiveSameActionForms(t *testing.T) {
	// Two distinct forms posting to the same action must each get their own
	// propagated clones.
	page := &element.Page{
		URL: ownerURL,
		Forms: []*element.Form{
			element.NewForm("http://target.example.com/", "POST",
				map[string]string{"user": "", "pass": ""}),
			element.NewForm("http://target.example.com/", "POST",
				map[string]string{"q": ""}),
		},
	}
	c := newCookie(t, cookie.WithPage(page))

	variants := scan.Mutations(c, "--payload--", scan.Options{Extensive: true})
	require.Len(t, variants, 4+4*2)

	perInputSet := map[int]int{}
	for _, v := range variants {
		if v.Element != nil {
			perInputSet[len(v.Element.Inputs())]++
		}
	}
	assert.Equal(t, 4, perInputSet[2], "login form propagated once per cookie variant")
	assert.Equal(t, 4, perInputSet[1], "search form propagated once per cookie variant")
}

func TestMutationsExtensiveLeavesPageUntouched(t *testing.T) {
	page := newPage()
	c := newCookie(t, cookie.WithPage(page))
	scan.Mutations(c, "--payload--", scan.Options{Extensive: true})

	assert.Equal(t, "", page.Forms[0].Inputs()["user"], "propagation clones, never mutates the page")
	assert.Empty(t, page.Links[0].Options().Cookies)
}

func TestMutationsExtensiveOrphan(t *testing.T) {
	variants := scan.Mutations(newCookie(t), "--payload--", scan.Options{Extensive: true})
	assert.Len(t, variants, 4, "orphan cookies are never propagated")
}

func TestMutationsUniqueIDs(t *testing.T) {
	variants := scan.Mutations(newCookie(t, cookie.WithPage(newPage())), "--payload--",
		scan.Options{ParamFlip: true, Extensive: true})

	ids := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		require.NotEmpty(t, v.Meta().ID)
		ids[v.Meta().ID] = struct{}{}
	}
	assert.Len(t, ids, len(variants))
}
