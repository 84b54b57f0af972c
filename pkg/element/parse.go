package element

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParsePage builds the page model from an HTML body. Links take their inputs
// from query parameters, forms from their named fields. Relative actions are
// resolved against the page URL.
func ParsePage(pageURL, body string) (*Page, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, err
	}

	page := &Page{URL: pageURL}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(strings.ToLower(href), "javascript:") {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		abs := base.ResolveReference(ref)
		inputs := make(map[string]string)
		for k, vs := range abs.Query() {
			if len(vs) > 0 {
				inputs[k] = vs[0]
			}
		}
		abs.RawQuery = ""
		abs.Fragment = ""
		page.Links = append(page.Links, NewLink(abs.String(), inputs))
	})

	doc.Find("form").Each(func(_ int, s *goquery.Selection) {
		target := base
		if action := strings.TrimSpace(s.AttrOr("action", "")); action != "" {
			if ref, err := url.Parse(action); err == nil {
				target = base.ResolveReference(ref)
			}
		}
		method := strings.ToUpper(strings.TrimSpace(s.AttrOr("method", "")))
		if method == "" {
			method = "GET"
		}
		inputs := make(map[string]string)
		s.Find("input[name], textarea[name], select[name]").Each(func(_ int, in *goquery.Selection) {
			name := in.AttrOr("name", "")
			if name == "" {
				return
			}
			inputs[name] = in.AttrOr("value", "")
		})
		page.Forms = append(page.Forms, NewForm(target.String(), method, inputs))
	})

	return page, nil
}
