package element

// Options is the per-element dispatch side channel consumed at request
// assembly time. Cookies stashed here ride along with the element's own
// inputs when the variant is eventually sent.
type Options struct {
	Cookies map[string]string
	Headers map[string]string
}

func (o *Options) clone() Options {
	return Options{
		Cookies: cloneMap(o.Cookies),
		Headers: cloneMap(o.Headers),
	}
}

// PageElement is a link or form discovered on a page, exposing the inputs a
// cookie mutation can be propagated across.
type PageElement interface {
	Kind() string
	Action() string
	Method() string
	Inputs() map[string]string
	SetInputs(map[string]string)
	Meta() Meta
	SetMeta(Meta)
	Options() *Options
	Clone() PageElement
}

// Page is the live context an element was discovered in: the page URL plus
// its ordered link and form collections.
//
// A Page is immutable by contract once discovery completes. It is shared as
// read-only context across cookies and their mutation variants, so mutators
// such as SetInputs and SetMeta must only ever be called on element clones,
// never on the page's own elements.
type Page struct {
	URL   string
	Links []*Link
	Forms []*Form
}

// Elements returns the page's links followed by its forms, in document order.
func (p *Page) Elements() []PageElement {
	out := make([]PageElement, 0, len(p.Links)+len(p.Forms))
	for _, l := range p.Links {
		out = append(out, l)
	}
	for _, f := range p.Forms {
		out = append(out, f)
	}
	return out
}

type pageElement struct {
	kind   string
	action string
	method string
	inputs map[string]string
	meta   Meta
	opts   Options
}

func (e *pageElement) Kind() string   { return e.kind }
func (e *pageElement) Action() string { return e.action }
func (e *pageElement) Method() string { return e.method }

// Inputs returns a copy; callers mutate elements only through SetInputs.
func (e *pageElement) Inputs() map[string]string { return cloneMap(e.inputs) }

func (e *pageElement) SetInputs(inputs map[string]string) { e.inputs = cloneMap(inputs) }

func (e *pageElement) Meta() Meta        { return e.meta }
func (e *pageElement) SetMeta(m Meta)    { e.meta = m }
func (e *pageElement) Options() *Options { return &e.opts }

func (e *pageElement) cloneInto(dst *pageElement) {
	*dst = pageElement{
		kind:   e.kind,
		action: e.action,
		method: e.method,
		inputs: cloneMap(e.inputs),
		meta:   e.meta,
		opts:   e.opts.clone(),
	}
}

// Link is an anchor whose query parameters form its inputs.
type Link struct {
	pageElement
}

// NewLink creates a link element for the given absolute URL and query inputs.
func NewLink(action string, inputs map[string]string) *Link {
	return &Link{pageElement{
		kind:   "link",
		action: action,
		method: "GET",
		inputs: cloneMap(inputs),
	}}
}

// Clone returns a fully independent copy sharing no mutable state.
func (l *Link) Clone() PageElement {
	out := &Link{}
	l.cloneInto(&out.pageElement)
	return out
}

// Form is an HTML form whose named fields form its inputs.
type Form struct {
	pageElement
}

// NewForm creates a form element for the given action, method and fields.
func NewForm(action, method string, inputs map[string]string) *Form {
	return &Form{pageElement{
		kind:   "form",
		action: action,
		method: method,
		inputs: cloneMap(inputs),
	}}
}

// Clone returns a fully independent copy sharing no mutable state.
func (f *Form) Clone() PageElement {
	out := &Form{}
	f.cloneInto(&out.pageElement)
	return out
}

func cloneMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
