package dom

// ShadowMode is the encapsulation mode of a shadow root.
type ShadowMode string

const (
	ShadowOpen   ShadowMode = "open"
	ShadowClosed ShadowMode = "closed"
)

// ShadowRoot is an encapsulated subtree attached to a host element.
type ShadowRoot struct {
	host      *Element
	mode      ShadowMode
	children  []*Element
	html      string
	listeners listenerSet
}

// Host returns the element hosting the shadow root.
func (s *ShadowRoot) Host() *Element { return s.host }

// Mode returns the encapsulation mode.
func (s *ShadowRoot) Mode() ShadowMode { return s.mode }

// InnerHTML returns the rendered markup.
func (s *ShadowRoot) InnerHTML() string { return s.html }

// SetInnerHTML replaces the rendered markup.
func (s *ShadowRoot) SetInnerHTML(html string) { s.html = html }

// Children returns a copy of the element children of the shadow root.
func (s *ShadowRoot) Children() []*Element {
	return append([]*Element(nil), s.children...)
}

// AppendChild inserts child as the last element child of the shadow root.
func (s *ShadowRoot) AppendChild(child *Element) error {
	if child == s.host || child.isShadowIncludingAncestorOf(s.host) {
		return ErrHierarchy
	}
	child.detach()
	if doc := s.host.doc; child.doc != doc {
		doc.adopt(child)
	}
	child.shadowParent = s
	s.children = append(s.children, child)
	if child.IsConnected() {
		connect(child)
	}
	return nil
}

// AddEventListener registers a listener and returns a function removing it.
func (s *ShadowRoot) AddEventListener(typ string, fn Listener) func() {
	return s.listeners.add(typ, fn)
}
