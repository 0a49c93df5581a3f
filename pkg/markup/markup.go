// Package markup loads host page HTML into a dom.Document and serializes
// the page back out with each element's shadow root inlined as a
// declarative <template shadowrootmode="open">.
package markup

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/wcbridge/pkg/dom"
)

// Page is a parsed HTML document mirrored into a dom.Document. Text and
// comments stay in the HTML tree; elements and their attributes live in
// the dom.Document, which is authoritative on output.
type Page struct {
	doc   *dom.Document
	root  *html.Node
	nodes []mirror
}

type mirror struct {
	node *html.Node
	el   *dom.Element
}

// Parse reads a full HTML document and mirrors its body into doc. Custom
// elements defined in doc's registry are constructed and connected as
// they are inserted, in tree order.
func Parse(r io.Reader, doc *dom.Document) (*Page, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("markup: parse: %w", err)
	}
	p := &Page{doc: doc, root: root}

	body := findElement(root, atom.Body)
	if body == nil {
		return nil, fmt.Errorf("markup: document has no body")
	}
	for _, a := range body.Attr {
		doc.Body().SetAttribute(a.Key, a.Val)
	}
	p.nodes = append(p.nodes, mirror{node: body, el: doc.Body()})
	if err := p.mirrorChildren(body, doc.Body()); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseString is Parse over a string.
func ParseString(s string, doc *dom.Document) (*Page, error) {
	return Parse(strings.NewReader(s), doc)
}

func (p *Page) mirrorChildren(n *html.Node, parent *dom.Element) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		el := p.doc.CreateElement(c.Data)
		for _, a := range c.Attr {
			if a.Namespace != "" {
				continue
			}
			el.SetAttribute(a.Key, a.Val)
		}
		if err := parent.AppendChild(el); err != nil {
			return fmt.Errorf("markup: insert <%s>: %w", c.Data, err)
		}
		p.nodes = append(p.nodes, mirror{node: c, el: el})
		if err := p.mirrorChildren(c, el); err != nil {
			return err
		}
	}
	return nil
}

// Document returns the mirrored document.
func (p *Page) Document() *dom.Document { return p.doc }

// Elements returns the mirrored elements with the given tag in tree order.
// An empty tag matches every element.
func (p *Page) Elements(tag string) []*dom.Element {
	var out []*dom.Element
	tag = strings.ToLower(tag)
	for _, m := range p.nodes {
		if tag == "" || m.el.TagName() == tag {
			out = append(out, m.el)
		}
	}
	return out
}

// Render writes the page. Attributes are taken from the dom elements and
// every open shadow root with content is emitted as a declarative shadow
// root template ahead of the element's light children.
func (p *Page) Render(w io.Writer) error {
	var inserted []*html.Node
	defer func() {
		for _, t := range inserted {
			t.Parent.RemoveChild(t)
		}
	}()

	for _, m := range p.nodes {
		m.node.Attr = syncAttrs(m.node.Attr, m.el)
		shadow := m.el.ShadowRoot()
		if shadow == nil || shadow.InnerHTML() == "" {
			continue
		}
		tmpl, err := shadowTemplate(shadow)
		if err != nil {
			return err
		}
		m.node.InsertBefore(tmpl, m.node.FirstChild)
		inserted = append(inserted, tmpl)
	}
	return html.Render(w, p.root)
}

// String renders the page to a string.
func (p *Page) String() (string, error) {
	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func shadowTemplate(shadow *dom.ShadowRoot) (*html.Node, error) {
	tmpl := &html.Node{
		Type:     html.ElementNode,
		Data:     "template",
		DataAtom: atom.Template,
		Attr:     []html.Attribute{{Key: "shadowrootmode", Val: "open"}},
	}
	nodes, err := html.ParseFragment(strings.NewReader(shadow.InnerHTML()), tmpl)
	if err != nil {
		return nil, fmt.Errorf("markup: shadow root of <%s>: %w", shadow.Host().TagName(), err)
	}
	for _, n := range nodes {
		tmpl.AppendChild(n)
	}
	return tmpl, nil
}

// syncAttrs rebuilds attrs from el, keeping namespaced attributes that
// were never mirrored.
func syncAttrs(attrs []html.Attribute, el *dom.Element) []html.Attribute {
	out := make([]html.Attribute, 0, len(attrs))
	for _, a := range attrs {
		if a.Namespace != "" {
			out = append(out, a)
		}
	}
	for _, a := range el.Attributes() {
		out = append(out, html.Attribute{Key: a.Name, Val: a.Value})
	}
	return out
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}
