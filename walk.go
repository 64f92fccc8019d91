package diagram

import (
	"iter"
)

// All returns an iterator over d and all of its descendants in pre-order.
// Each node is yielded with its name path: the names of the children leading
// to it, joined by slashes. The name path of d itself is "". Siblings are
// visited in sorted name order.
func (d Diagram) All() iter.Seq2[string, Diagram] {
	return func(yield func(string, Diagram) bool) {
		d.walk("", yield)
	}
}

func (d Diagram) walk(prefix string, yield func(string, Diagram) bool) bool {
	if !yield(prefix, d) {
		return false
	}
	for name, child := range d.Children() {
		if prefix != "" {
			name = prefix + "/" + name
		}
		if !child.walk(name, yield) {
			return false
		}
	}
	return true
}

// FindTagged returns an iterator over the nodes of the tree that carry tag, in
// the same order and with the same name paths as [Diagram.All].
func (d Diagram) FindTagged(tag string) iter.Seq2[string, Diagram] {
	return func(yield func(string, Diagram) bool) {
		for name, node := range d.All() {
			if node.HasTag(tag) && !yield(name, node) {
				return
			}
		}
	}
}

// Find returns the descendant at the given name path, as produced by
// [Diagram.All].
func (d Diagram) Find(namePath string) (Diagram, bool) {
	for name, node := range d.All() {
		if name == namePath {
			return node, true
		}
	}
	return Diagram{}, false
}
