package cookie

import "github.com/rasadeyan/arachni/pkg/element"

type Option func(*Cookie)

// WithPage attaches the cookie to the live page context it was discovered
// on. Cookies without a page are orphans and are never propagated across
// page elements.
func WithPage(p *element.Page) Option {
	return func(c *Cookie) {
		c.page = p
	}
}
