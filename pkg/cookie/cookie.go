package cookie

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rasadeyan/arachni/pkg/element"
)

// The fixed attribute set every cookie carries. After normalization all of
// these keys are present; missing ones hold their documented defaults
// (version 0, httponly false, everything else nil).
var attributeNames = []string{
	"name", "value", "version", "port", "discard", "comment_url",
	"expires", "max_age", "comment", "secure", "path", "domain", "httponly",
}

var attributeSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(attributeNames))
	for _, name := range attributeNames {
		set[name] = struct{}{}
	}
	return set
}()

// KnownAttribute reports whether name belongs to the fixed attribute set.
func KnownAttribute(name string) bool {
	_, ok := attributeSet[strings.ToLower(name)]
	return ok
}

func defaultAttributes() map[string]any {
	attrs := make(map[string]any, len(attributeNames))
	for _, name := range attributeNames {
		attrs[name] = nil
	}
	attrs["version"] = 0
	attrs["httponly"] = false
	return attrs
}

// Cookie is one HTTP cookie treated as a single-input fuzz target. The
// auditable pair and the attribute map stay mirrored at all times.
type Cookie struct {
	owner    *url.URL
	attrs    map[string]any
	input    element.Input
	original element.Input
	meta     element.Meta
	page     *element.Page
}

// New builds a normalized Cookie owned by the given request URL.
//
// When raw contains both "name" and "value" keys they become the auditable
// pair; otherwise the first key outside the fixed attribute set is taken as
// the pair (the single-pair convenience form). Supplied attributes are merged
// over the defaults, the value is decoded from wire form, and missing
// path/domain are derived from the owner URL.
func New(ownerURL string, raw map[string]any, opts ...Option) (*Cookie, error) {
	owner, err := url.Parse(ownerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidOwnerURL, ownerURL, err)
	}
	if owner.Host == "" {
		return nil, fmt.Errorf("%w: %q: missing host", ErrInvalidOwnerURL, ownerURL)
	}

	c := &Cookie{
		owner: owner,
		attrs: defaultAttributes(),
	}
	for _, opt := range opts {
		opt(c)
	}

	merged := make(map[string]any, len(raw))
	for k, v := range raw {
		merged[strings.ToLower(k)] = v
	}

	name, hasName := merged["name"]
	value, hasValue := merged["value"]
	switch {
	case hasName && hasValue:
		c.input = element.Input{Key: attrString(name), Value: attrString(value)}
	default:
		// Single-pair convenience: the raw map itself is the pair. Keys
		// outside the fixed attribute set are preferred, so an incomplete
		// name/value pair still becomes the input (e.g. {"name": "foo"}
		// yields the pair name=foo). Sorted order keeps the choice
		// deterministic for multi-key maps.
		keys := make([]string, 0, len(merged))
		for k := range merged {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pick := ""
		for _, k := range keys {
			if !KnownAttribute(k) {
				pick = k
				break
			}
		}
		if pick == "" && len(keys) > 0 {
			pick = keys[0]
		}
		if pick != "" {
			c.input = element.Input{Key: pick, Value: attrString(merged[pick])}
			delete(merged, pick)
		}
	}

	for k, v := range merged {
		if !KnownAttribute(k) {
			continue
		}
		if err := c.setAttribute(k, v); err != nil {
			return nil, err
		}
	}

	if c.input.Value != "" {
		c.input.Value = Decode(c.input.Value)
	}
	c.attrs["name"] = c.input.Key
	c.attrs["value"] = c.input.Value
	if c.input.Empty() {
		c.attrs["name"], c.attrs["value"] = nil, nil
	}

	if c.attrs["path"] == nil {
		path := owner.Path
		if path == "" {
			path = "/"
		}
		c.attrs["path"] = path
	}
	if c.attrs["domain"] == nil {
		c.attrs["domain"] = owner.Hostname()
	}

	c.original = c.input
	return c, nil
}

func (c *Cookie) setAttribute(key string, v any) error {
	switch key {
	case "name", "value":
		// Mirrored from the auditable pair after normalization.
		return nil
	case "expires":
		switch t := v.(type) {
		case nil:
		case time.Time:
			c.attrs[key] = t.UTC()
		case *time.Time:
			if t != nil {
				c.attrs[key] = t.UTC()
			}
		case string:
			parsed, err := ParseTime(t)
			if err != nil {
				return err
			}
			c.attrs[key] = parsed
		default:
			return fmt.Errorf("%w: unsupported expires type %T", ErrTimeParse, v)
		}
	case "version", "max_age":
		switch n := v.(type) {
		case nil:
		case int:
			c.attrs[key] = n
		case int64:
			c.attrs[key] = int(n)
		case string:
			if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
				c.attrs[key] = parsed
			}
		}
	case "secure", "httponly", "discard":
		if b, ok := v.(bool); ok {
			c.attrs[key] = b
		}
	default:
		if v != nil {
			c.attrs[key] = attrString(v)
		}
	}
	return nil
}

func attrString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", s)
	}
}

// Attribute looks up any name from the fixed attribute set. Names outside
// the set fail with ErrNoSuchAttribute, distinguishable from a present but
// nil attribute.
func (c *Cookie) Attribute(name string) (any, error) {
	key := strings.ToLower(name)
	if !KnownAttribute(key) {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchAttribute, name)
	}
	return c.attrs[key], nil
}

func (c *Cookie) Name() string  { return attrStringOrEmpty(c.attrs["name"]) }
func (c *Cookie) Value() string { return attrStringOrEmpty(c.attrs["value"]) }

// Domain is the cookie's domain, derived from the owner URL when the raw
// input carried none.
func (c *Cookie) Domain() string { return attrStringOrEmpty(c.attrs["domain"]) }

// Path is the cookie's path, derived from the owner URL when the raw input
// carried none.
func (c *Cookie) Path() string { return attrStringOrEmpty(c.attrs["path"]) }

func (c *Cookie) Comment() string    { return attrStringOrEmpty(c.attrs["comment"]) }
func (c *Cookie) CommentURL() string { return attrStringOrEmpty(c.attrs["comment_url"]) }
func (c *Cookie) Port() string       { return attrStringOrEmpty(c.attrs["port"]) }

func (c *Cookie) Version() int {
	v, _ := c.attrs["version"].(int)
	return v
}

// MaxAge returns the max_age attribute and whether it was set.
func (c *Cookie) MaxAge() (int, bool) {
	v, ok := c.attrs["max_age"].(int)
	return v, ok
}

// Expires returns the absolute expiry time, or nil for a session cookie.
func (c *Cookie) Expires() *time.Time {
	if t, ok := c.attrs["expires"].(time.Time); ok {
		return &t
	}
	return nil
}

// Secure reports whether the secure attribute is exactly true.
func (c *Cookie) Secure() bool {
	v, _ := c.attrs["secure"].(bool)
	return v
}

// HTTPOnly reports whether the httponly attribute is exactly true.
func (c *Cookie) HTTPOnly() bool {
	v, _ := c.attrs["httponly"].(bool)
	return v
}

// Session reports whether the cookie has no expiry.
func (c *Cookie) Session() bool { return c.Expires() == nil }

// Expired reports whether ref is strictly after the expiry time. Session
// cookies never expire.
func (c *Cookie) Expired(ref time.Time) bool {
	exp := c.Expires()
	return exp != nil && ref.After(*exp)
}

// Input returns the current auditable pair.
func (c *Cookie) Input() element.Input { return c.input }

// SetInput reassigns the auditable pair, keeping the name/value attributes
// mirrored. An empty key clears the pair entirely.
func (c *Cookie) SetInput(in element.Input) {
	if in.Key == "" {
		c.input = element.Input{}
		c.attrs["name"], c.attrs["value"] = nil, nil
		return
	}
	c.input = in
	c.attrs["name"] = in.Key
	c.attrs["value"] = in.Value
}

// Original returns the snapshot of the auditable pair frozen at
// construction time.
func (c *Cookie) Original() element.Input { return c.original }

func (c *Cookie) Meta() element.Meta     { return c.meta }
func (c *Cookie) SetMeta(m element.Meta) { c.meta = m }

// Page returns the live page context the cookie was discovered on, or nil
// for an orphan cookie.
func (c *Cookie) Page() *element.Page { return c.page }

// AttachPage binds the cookie to a live page context.
func (c *Cookie) AttachPage(p *element.Page) { c.page = p }

// OwnerURL is the request URL the cookie belongs to. Cookies are always
// dispatched against it with GET.
func (c *Cookie) OwnerURL() string { return c.owner.String() }

// Clone returns a fully independent copy sharing no mutable state with the
// source. The page attachment is carried over by pointer: a Page is
// immutable by contract after discovery, so sharing it breaks no isolation.
func (c *Cookie) Clone() *Cookie {
	owner := *c.owner
	attrs := make(map[string]any, len(c.attrs))
	for k, v := range c.attrs {
		attrs[k] = v
	}
	return &Cookie{
		owner:    &owner,
		attrs:    attrs,
		input:    c.input,
		original: c.original,
		meta:     c.meta,
		page:     c.page,
	}
}

// EncodedString renders the pair in request Cookie header form, both sides
// run through Encode.
func (c *Cookie) EncodedString() string {
	return Encode(c.Name()) + "=" + Encode(c.Value())
}

func (c *Cookie) String() string { return c.EncodedString() }

func attrStringOrEmpty(v any) string {
	if v == nil {
		return ""
	}
	return attrString(v)
}
