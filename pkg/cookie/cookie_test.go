package cookie_test

import (
	"testing"
	"time"

	"github.com/rasadeyan/arachni/pkg/cookie"
	"github.com/rasadeyan/arachni/pkg/element"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownerURL = "http://owner.example.com/dir/page"

func TestNewNormalization(t *testing.T) {
	expires := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	c, err := cookie.New(ownerURL, map[string]any{
		"name":    "session",
		"value":   "my+value%3B",
		"expires": expires,
		"secure":  true,
	})
	require.NoError(t, err)

	assert.Equal(t, "session", c.Name())
	assert.Equal(t, "my value;", c.Value(), "value is decoded from wire form")
	assert.Equal(t, "/dir/page", c.Path(), "path derived from owner URL")
	assert.Equal(t, "owner.example.com", c.Domain(), "domain derived from owner URL")
	assert.True(t, c.Secure())
	assert.False(t, c.HTTPOnly())
	assert.Equal(t, 0, c.Version())

	require.NotNil(t, c.Expires())
	assert.True(t, expires.Equal(*c.Expires()))

	orig := c.Original()
	assert.Equal(t, "session", orig.Key)
	assert.Equal(t, "my value;", orig.Value)
}

func TestNewSinglePairConvenience(t *testing.T) {
	c, err := cookie.New("http://owner.example.com/", map[string]any{"token": "abc"})
	require.NoError(t, err)

	assert.Equal(t, "token", c.Name())
	assert.Equal(t, "abc", c.Value())
	assert.Equal(t, "/", c.Path(), "empty owner path defaults to /")
	assert.Equal(t, element.Input{Key: "token", Value: "abc"}, c.Input())
}

func TestNewIncompletePairFallsBackToRawMap(t *testing.T) {
	// Without both "name" and "value" the raw map itself is the pair, even
	// when its key collides with a fixed attribute name.
	c, err := cookie.New(ownerURL, map[string]any{"name": "foo"})
	require.NoError(t, err)

	assert.Equal(t, element.Input{Key: "name", Value: "foo"}, c.Input())
	assert.Equal(t, "name", c.Name())
	assert.Equal(t, "foo", c.Value())
}

func TestNewExplicitAttributesWin(t *testing.T) {
	c, err := cookie.New(ownerURL, map[string]any{
		"name":   "n",
		"value":  "v",
		"path":   "/explicit",
		"domain": ".other.example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "/explicit", c.Path())
	assert.Equal(t, ".other.example.com", c.Domain())
}

func TestNewInvalidOwnerURL(t *testing.T) {
	_, err := cookie.New("not-a-url", map[string]any{"a": "b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cookie.ErrInvalidOwnerURL)
}

func TestAttributeLookup(t *testing.T) {
	c, err := cookie.New(ownerURL, map[string]any{"name": "n", "value": "v"})
	require.NoError(t, err)

	v, err := c.Attribute("name")
	require.NoError(t, err)
	assert.Equal(t, "n", v)

	// Present but unset attribute reads as nil, not as an error.
	v, err = c.Attribute("comment")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = c.Attribute("bogus")
	require.Error(t, err)
	assert.ErrorIs(t, err, cookie.ErrNoSuchAttribute)

	assert.True(t, cookie.KnownAttribute("HttpOnly"))
	assert.False(t, cookie.KnownAttribute("bogus"))
}

func TestPredicates(t *testing.T) {
	expires := time.Date(2012, 10, 2, 19, 25, 57, 0, time.UTC)

	persistent, err := cookie.New(ownerURL, map[string]any{
		"name": "n", "value": "v", "expires": expires,
	})
	require.NoError(t, err)

	session, err := cookie.New(ownerURL, map[string]any{"name": "n", "value": "v"})
	require.NoError(t, err)

	assert.False(t, persistent.Session())
	assert.True(t, session.Session())

	assert.True(t, persistent.Expired(expires.Add(time.Second)))
	assert.False(t, persistent.Expired(expires), "expiry boundary is strict")
	assert.False(t, persistent.Expired(expires.Add(-time.Second)))
	assert.False(t, session.Expired(time.Now().Add(100*365*24*time.Hour)),
		"session cookies never expire")
}

func TestSetInputKeepsAttributesMirrored(t *testing.T) {
	c, err := cookie.New(ownerURL, map[string]any{"name": "n", "value": "v"})
	require.NoError(t, err)

	c.SetInput(element.Input{Key: "other", Value: "payload"})
	assert.Equal(t, "other", c.Name())
	assert.Equal(t, "payload", c.Value())
	assert.Equal(t, element.Input{Key: "n", Value: "v"}, c.Original(),
		"original snapshot never mutates")

	c.SetInput(element.Input{})
	assert.Empty(t, c.Name())
	assert.Empty(t, c.Value())
	assert.True(t, c.Input().Empty())
}

func TestCloneIndependence(t *testing.T) {
	c, err := cookie.New(ownerURL, map[string]any{"name": "n", "value": "v"})
	require.NoError(t, err)

	clone := c.Clone()
	clone.SetInput(element.Input{Key: "mutated", Value: "x"})
	clone.SetMeta(element.NewMeta("mutated", element.StrategyStraight))

	assert.Equal(t, "n", c.Name())
	assert.Equal(t, "v", c.Value())
	assert.Empty(t, c.Meta().Altered)
	assert.Equal(t, "mutated", clone.Name())
}

func TestEncodedString(t *testing.T) {
	c, err := cookie.New(ownerURL, map[string]any{"name": "na me", "value": "v;1"})
	require.NoError(t, err)

	assert.Equal(t, "na+me=v%3B1", c.EncodedString())
	assert.Equal(t, c.EncodedString(), c.String())
}
