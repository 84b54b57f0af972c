package scan

import (
	"fmt"

	"github.com/rasadeyan/arachni/pkg/cookie"
	"github.com/rasadeyan/arachni/pkg/element"
)

// Variant is one unit of mutated work: either a cookie variant or a page
// element clone carrying a cookie variant's pair in its dispatch options.
// Exactly one of the two fields is set.
type Variant struct {
	Cookie  *cookie.Cookie
	Element element.PageElement
}

// Meta returns the mutation provenance of whichever side is set.
func (v Variant) Meta() element.Meta {
	if v.Cookie != nil {
		return v.Cookie.Meta()
	}
	return v.Element.Meta()
}

// Mutations produces the ordered, deduplicated variant sequence for one
// cookie and payload.
//
// The baseline is one variant per generic strategy, each an independent copy
// of the cookie with the auditable value replaced. ParamFlip appends exactly
// one variant whose name is the payload; it bypasses name-based scope checks
// because a flipped name matches no legitimately discovered cookie. In
// extensive mode, every (cookie variant, page element) pair over the
// attached page's links and forms with at least one input yields a
// propagated clone — propagation supplements the cookie variants, never
// replaces them. Orphan cookies are never propagated.
func Mutations(c *cookie.Cookie, payload string, opts Options) []Variant {
	var out []Variant
	seen := make(map[string]struct{})
	add := func(key string, v Variant) {
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}

	original := c.Original()

	for _, strategy := range opts.strategies() {
		clone := c.Clone()
		clone.SetInput(element.Input{
			Key:   original.Key,
			Value: strategy.Apply(original.Value, payload),
		})
		clone.SetMeta(element.NewMeta(
			fmt.Sprintf("cookie %q value (%s)", original.Key, strategy), strategy))
		add("cookie|"+clone.EncodedString(), Variant{Cookie: clone})
	}

	if opts.ParamFlip {
		clone := c.Clone()
		clone.SetInput(element.Input{Key: payload, Value: element.PlaceholderSeed})
		meta := element.NewMeta(
			fmt.Sprintf("cookie %q parameter flip", original.Key), element.StrategyStraight)
		meta.ScopeOverride = true
		clone.SetMeta(meta)
		add("cookie|"+clone.EncodedString(), Variant{Cookie: clone})
	}

	if opts.Extensive && c.Page() != nil {
		cookieVariants := make([]Variant, len(out))
		copy(cookieVariants, out)

		for _, v := range cookieVariants {
			pair := v.Cookie.Input()
			for idx, el := range c.Page().Elements() {
				if len(el.Inputs()) == 0 {
					continue
				}

				clone := el.Clone()
				clone.SetMeta(element.NewMeta(
					fmt.Sprintf("%s carrying %s", el.Kind(), v.Cookie.Meta().Altered),
					v.Cookie.Meta().Strategy))
				clone.Options().Cookies = map[string]string{pair.Key: pair.Value}
				clone.SetInputs(element.FillDefaults(clone.Inputs()))

				// The element's position identifies it; kind/action alone
				// would collapse distinct elements sharing an action.
				add(fmt.Sprintf("element|%d|%s|%s|%s=%s", idx, el.Kind(), el.Action(), pair.Key, pair.Value),
					Variant{Element: clone})
			}
		}
	}

	return out
}
