package iet

import "github.com/flatsurfgo/intervalxt/label"

// nilIndex marks the absence of a neighbor in the arena's linked lists.
const nilIndex = -1

// node is one interval, addressed by its slot index in IET.nodes. prev/next
// link it within its own list (top or bottom); twin points at the node
// carrying the same label in the opposite list.
type node struct {
	label      label.Label
	prev, next int
	twin       int
}

// at returns the label at position idx, panicking if idx is nilIndex —
// callers are expected to have validated non-emptiness first.
func (e *IET) at(idx int) label.Label {
	return e.nodes[idx].label
}

// walkLabels returns the labels of a list starting at head, in list order.
func (e *IET) walkLabels(head int) []label.Label {
	var out []label.Label
	for n := head; n != nilIndex; n = e.nodes[n].next {
		out = append(out, e.nodes[n].label)
	}

	return out
}

// buildList links a fresh run of nodes for labels, in order, returning the
// head index. The nodes are appended to e.nodes.
func (e *IET) buildList(labels []label.Label) int {
	head := nilIndex
	prev := nilIndex
	for _, l := range labels {
		idx := len(e.nodes)
		e.nodes = append(e.nodes, node{label: l, prev: prev, next: nilIndex, twin: nilIndex})
		if prev != nilIndex {
			e.nodes[prev].next = idx
		} else {
			head = idx
		}
		prev = idx
	}

	return head
}

// unlinkFront removes the head of the list starting at head, returning the
// new head.
func (e *IET) unlinkFront(head int) int {
	next := e.nodes[head].next
	if next != nilIndex {
		e.nodes[next].prev = nilIndex
	}
	e.nodes[head].next = nilIndex
	e.nodes[head].prev = nilIndex

	return next
}

// replaceNode detaches `old` from its list and splices `replacement` into
// exactly the position `old` occupied, fixing up the list's head pointer if
// necessary. `replacement` must not currently belong to this list.
func (e *IET) replaceNode(listHead *int, old, replacement int) {
	p, n := e.nodes[old].prev, e.nodes[old].next
	e.nodes[replacement].prev = p
	e.nodes[replacement].next = n
	if p != nilIndex {
		e.nodes[p].next = replacement
	} else {
		*listHead = replacement
	}
	if n != nilIndex {
		e.nodes[n].prev = replacement
	}
	e.nodes[old].prev, e.nodes[old].next = nilIndex, nilIndex
}

// insertChainBefore splices the already-linked chain [chainHead..chainTail]
// immediately before beforeIdx in the list headed by *listHead.
func (e *IET) insertChainBefore(listHead *int, beforeIdx, chainHead, chainTail int) {
	p := e.nodes[beforeIdx].prev
	e.nodes[chainHead].prev = p
	if p != nilIndex {
		e.nodes[p].next = chainHead
	} else {
		*listHead = chainHead
	}
	e.nodes[chainTail].next = beforeIdx
	e.nodes[beforeIdx].prev = chainTail
}
