package dom

// CustomEvent is an event carrying an arbitrary detail payload.
type CustomEvent struct {
	Type     string
	Detail   any
	Bubbles  bool
	Composed bool

	// Target is the element the event is currently attributed to. It is
	// retargeted to the shadow host when the event leaves a shadow tree.
	Target *Element

	stopped bool
}

// CustomEventInit holds the optional fields of a CustomEvent.
type CustomEventInit struct {
	Detail   any
	Bubbles  bool
	Composed bool
}

// NewCustomEvent creates an event of the given type.
func NewCustomEvent(typ string, init CustomEventInit) *CustomEvent {
	return &CustomEvent{
		Type:     typ,
		Detail:   init.Detail,
		Bubbles:  init.Bubbles,
		Composed: init.Composed,
	}
}

// StopPropagation prevents listeners further along the path from running.
func (e *CustomEvent) StopPropagation() {
	e.stopped = true
}

// Listener handles a dispatched event.
type Listener func(ev *CustomEvent)

type listenerEntry struct {
	fn Listener
}

type listenerSet struct {
	byType map[string][]*listenerEntry
}

func (s *listenerSet) add(typ string, fn Listener) func() {
	if s.byType == nil {
		s.byType = make(map[string][]*listenerEntry)
	}
	entry := &listenerEntry{fn: fn}
	s.byType[typ] = append(s.byType[typ], entry)
	return func() {
		entries := s.byType[typ]
		for i, e := range entries {
			if e == entry {
				s.byType[typ] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

func (s *listenerSet) invoke(ev *CustomEvent) {
	// Snapshot so listeners may add or remove listeners while running.
	entries := append([]*listenerEntry(nil), s.byType[ev.Type]...)
	for _, e := range entries {
		if ev.stopped {
			return
		}
		e.fn(ev)
	}
}

type pathEntry struct {
	listeners *listenerSet
	target    *Element
}

// eventPath computes the listener holders an event dispatched on el visits,
// each paired with the target as seen from that holder.
func eventPath(el *Element, composed bool) []pathEntry {
	var path []pathEntry
	node, target := el, el
	for node != nil {
		path = append(path, pathEntry{&node.listeners, target})
		if node.parent != nil {
			node = node.parent
			continue
		}
		if sr := node.shadowParent; sr != nil {
			path = append(path, pathEntry{&sr.listeners, target})
			if !composed {
				break
			}
			node, target = sr.host, sr.host
			continue
		}
		if node.doc != nil && node == node.doc.root {
			path = append(path, pathEntry{&node.doc.listeners, target})
		}
		break
	}
	return path
}
