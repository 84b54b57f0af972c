package element_test

import (
	"testing"

	"github.com/rasadeyan/arachni/pkg/element"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsIndependent(t *testing.T) {
	form := element.NewForm("http://example.com/login", "POST", map[string]string{
		"user": "admin",
		"pass": "",
	})
	form.Options().Cookies = map[string]string{"session": "abc"}

	clone := form.Clone()
	inputs := clone.Inputs()
	inputs["user"] = "mutated"
	clone.SetInputs(inputs)
	clone.Options().Cookies["session"] = "mutated"
	clone.SetMeta(element.NewMeta("mutated form", element.StrategyStraight))

	assert.Equal(t, "admin", form.Inputs()["user"])
	assert.Equal(t, "abc", form.Options().Cookies["session"])
	assert.Empty(t, form.Meta().Altered)
	assert.Equal(t, "mutated", clone.Inputs()["user"])
}

func TestPageElementsOrder(t *testing.T) {
	page := &element.Page{
		URL:   "http://example.com/",
		Links: []*element.Link{element.NewLink("http://example.com/a", nil)},
		Forms: []*element.Form{element.NewForm("http://example.com/b", "POST", nil)},
	}

	elements := page.Elements()
	require.Len(t, elements, 2)
	assert.Equal(t, "link", elements[0].Kind())
	assert.Equal(t, "form", elements[1].Kind())
}

func TestParsePage(t *testing.T) {
	body := `<html><body>
		<a href="/search?q=test&page=2">search</a>
		<a href="javascript:void(0)">noop</a>
		<a href="http://other.example.com/plain">plain</a>
		<form action="/login" method="post">
			<input type="text" name="user" value="guest">
			<input type="password" name="pass">
			<input type="submit" value="go">
		</form>
	</body></html>`

	page, err := element.ParsePage("http://example.com/index", body)
	require.NoError(t, err)

	require.Len(t, page.Links, 2)
	assert.Equal(t, "http://example.com/search", page.Links[0].Action())
	assert.Equal(t, map[string]string{"q": "test", "page": "2"}, page.Links[0].Inputs())
	assert.Empty(t, page.Links[1].Inputs())

	require.Len(t, page.Forms, 1)
	form := page.Forms[0]
	assert.Equal(t, "http://example.com/login", form.Action())
	assert.Equal(t, "POST", form.Method())
	assert.Equal(t, map[string]string{"user": "guest", "pass": ""}, form.Inputs())
}

func TestParsePageInvalidURL(t *testing.T) {
	_, err := element.ParsePage("http://exa mple.com/%zz", "<html></html>")
	require.Error(t, err)
}
