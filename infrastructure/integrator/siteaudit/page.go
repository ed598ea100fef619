package siteaudit

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

const maxDepth = 60

// PageSignals são os sinais extraídos do HTML da página inicial
type PageSignals struct {
	Title           string
	MetaDescription string
	HasViewport     bool
	H1Count         int
	HasPhoneLink    bool
	HasWhatsApp     bool
	HasEmailLink    bool
	SocialLinks     map[string]string // rede -> URL absoluta
}

// socialHosts mapeia o domínio de cada rede para a chave usada nos relatórios
var socialHosts = map[string]string{
	"instagram.com": "instagram",
	"facebook.com":  "facebook",
	"fb.com":        "facebook",
}

func ParsePage(r io.Reader, base *url.URL) (*PageSignals, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	signals := &PageSignals{SocialLinks: map[string]string{}}
	walk(doc, signals, base, 0)
	signals.Title = strings.TrimSpace(signals.Title)

	return signals, nil
}

func walk(n *html.Node, s *PageSignals, base *url.URL, depth int) {
	if depth > maxDepth {
		return
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "svg":
			return
		case "title":
			if s.Title == "" {
				s.Title = textContent(n)
			}
			return
		case "meta":
			name := strings.ToLower(getAttr(n, "name"))
			switch name {
			case "description":
				s.MetaDescription = strings.TrimSpace(getAttr(n, "content"))
			case "viewport":
				s.HasViewport = strings.Contains(getAttr(n, "content"), "width")
			}
		case "h1":
			s.H1Count++
		case "a":
			inspectLink(getAttr(n, "href"), s, base)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, s, base, depth+1)
	}
}

func inspectLink(href string, s *PageSignals, base *url.URL) {
	href = strings.TrimSpace(href)
	lower := strings.ToLower(href)

	switch {
	case href == "" || strings.HasPrefix(href, "#"):
		return
	case strings.HasPrefix(lower, "tel:"):
		s.HasPhoneLink = true
		return
	case strings.HasPrefix(lower, "mailto:"):
		s.HasEmailLink = true
		return
	}

	link, err := url.Parse(href)
	if err != nil {
		return
	}
	if base != nil {
		link = base.ResolveReference(link)
	}

	host := strings.TrimPrefix(strings.ToLower(link.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")

	if host == "wa.me" || host == "api.whatsapp.com" || strings.HasPrefix(lower, "whatsapp:") {
		s.HasWhatsApp = true
		return
	}

	if network, ok := socialHosts[host]; ok {
		if _, exists := s.SocialLinks[network]; !exists && strings.Trim(link.Path, "/") != "" {
			s.SocialLinks[network] = link.String()
		}
	}
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
