package cookie

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var headRegion = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)

// FromHeaders extracts cookies from a response header map. The Set-Cookie
// key is located case-insensitively; any parse failure yields an empty
// result rather than an error.
func FromHeaders(ownerURL string, headers map[string][]string) []*Cookie {
	for k, values := range headers {
		if !strings.EqualFold(k, "Set-Cookie") {
			continue
		}
		cookies, err := FromSetCookies(ownerURL, values)
		if err != nil {
			return nil
		}
		return cookies
	}
	return nil
}

// FromDocument extracts cookies from <meta http-equiv="set-cookie"> tags in
// an HTML body. The raw text is checked first: without a head region
// containing "set-cookie" the tag search is skipped entirely. Any failure on
// this path yields an empty result rather than an error.
func FromDocument(ownerURL, body string) []*Cookie {
	head := headRegion.FindString(body)
	if head == "" || !strings.Contains(strings.ToLower(head), "set-cookie") {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(head))
	if err != nil {
		return nil
	}

	var (
		out    []*Cookie
		failed bool
	)
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if equiv, _ := s.Attr("http-equiv"); !strings.EqualFold(equiv, "set-cookie") {
			return true
		}
		content, ok := s.Attr("content")
		if !ok {
			return true
		}

		c, err := FromSetCookie(ownerURL, content)
		if err != nil {
			failed = true
			return false
		}
		out = append(out, c)
		return true
	})
	if failed {
		return nil
	}
	return out
}

// FromResponse unions the cookies extracted from a response body and its
// headers, deduplicated by cookie name.
func FromResponse(ownerURL string, headers map[string][]string, body string) []*Cookie {
	var out []*Cookie
	seen := make(map[string]struct{})

	for _, c := range append(FromDocument(ownerURL, body), FromHeaders(ownerURL, headers)...) {
		if _, ok := seen[c.Name()]; ok {
			continue
		}
		seen[c.Name()] = struct{}{}
		out = append(out, c)
	}

	return out
}
