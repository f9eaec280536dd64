package htmlutil

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

type Anchor struct {
	Name  string
	Title string
	Href  string
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

func CleanText(s string) string {
	s = removeNonPrintable(s)
	s = strings.Trim(s, " \t\n")
	return innerWhitespace.ReplaceAllString(s, " ")
}

// GetAnchors collects the anchor elements of a selection, resolving
// each href against `base` the way a browser would.
func GetAnchors(base *url.URL, sel *goquery.Selection) []Anchor {
	anchors := []Anchor{}
	for _, n := range sel.Nodes {
		var href, title string
		for _, a := range n.Attr {
			switch a.Key {
			case "href":
				href = a.Val
			case "title":
				title = a.Val
			}
		}

		link, err := url.Parse(href)
		if err != nil {
			continue
		}
		if base != nil {
			link = base.ResolveReference(link)
		}

		anchors = append(anchors, Anchor{
			Name:  CleanText(GetText(n)),
			Title: title,
			Href:  link.String(),
		})
	}
	return anchors
}
