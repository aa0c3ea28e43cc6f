// Package ast defines the generic tree produced by parsing Paradox script.
//
// The tree is a sum type over four variants:
//
//   - *ScalarNode: a leaf value (string, int64, float64, bool, or Date)
//   - *ObjectNode: named children, keys unique, insertion order preserved
//   - *ListNode:   an ordered sequence of nodes
//   - *DateNode:   a date-keyed historical block; an object that also
//     carries its parsed Date
//
// Each variant carries only the fields it needs: a scalar cannot hold
// children and a list cannot be assigned named entries, so those invalid
// states are unrepresentable rather than checked at runtime.
//
// Nodes are mutated only during construction (by the parser or the factory
// functions); once a parse returns, the tree is read-only and may be shared
// freely across goroutines.
package ast

// Node is one element of a parsed tree.
type Node interface {
	// Key is the statement key the node was assigned under. It is "root"
	// for the synthetic root object and empty for unlabeled list items.
	Key() string

	node()
}

// Container is implemented by the variants that hold named children
// (*ObjectNode and *DateNode).
type Container interface {
	Node

	// AddChild inserts a child, overwriting any existing entry with the
	// same key (last-write-wins). Insertion order is preserved.
	AddChild(child Node)

	// AddChildAccumulating inserts a child; if the key is already present
	// the entries collapse into a ListNode, modeling the repeated-key
	// convention of Paradox script (e.g. repeated discovered_by = X).
	AddChildAccumulating(child Node)

	// Child returns the direct child with the given key.
	Child(key string) (Node, bool)

	// Children returns all direct children in insertion order.
	Children() []Node
}

// ScalarNode is a leaf carrying a single value.
type ScalarNode struct {
	key   string
	value any
}

// NewScalarNode creates a scalar leaf. The value must be one of string,
// int64, float64, bool, or Date.
func NewScalarNode(key string, value any) *ScalarNode {
	return &ScalarNode{key: key, value: value}
}

func (n *ScalarNode) Key() string { return n.key }

// Value returns the scalar's value.
func (n *ScalarNode) Value() any { return n.value }

func (*ScalarNode) node() {}

// ListNode is an ordered sequence of nodes. It represents both explicit
// value lists (k = { 1 2 3 }) and accumulated repeated keys.
type ListNode struct {
	key   string
	items []Node
}

// NewListNode creates a list with the given initial items.
func NewListNode(key string, items ...Node) *ListNode {
	return &ListNode{key: key, items: items}
}

func (n *ListNode) Key() string { return n.key }

// Items returns the list elements in order.
func (n *ListNode) Items() []Node { return n.items }

// Append adds an item to the end of the list.
func (n *ListNode) Append(item Node) {
	n.items = append(n.items, item)
}

func (*ListNode) node() {}

// childSet holds the shared children bookkeeping for ObjectNode and
// DateNode: a key-to-node map plus the key insertion order.
type childSet struct {
	order    []string
	children map[string]Node
}

func newChildSet() childSet {
	return childSet{children: make(map[string]Node)}
}

func (c *childSet) add(key string, child Node) {
	if _, exists := c.children[key]; !exists {
		c.order = append(c.order, key)
	}
	c.children[key] = child
}

func (c *childSet) addAccumulating(key string, child Node) {
	existing, exists := c.children[key]
	if !exists {
		c.order = append(c.order, key)
		c.children[key] = child
		return
	}
	if list, ok := existing.(*ListNode); ok {
		list.Append(child)
		return
	}
	c.children[key] = NewListNode(key, existing, child)
}

func (c *childSet) child(key string) (Node, bool) {
	n, ok := c.children[key]
	return n, ok
}

func (c *childSet) all() []Node {
	out := make([]Node, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.children[key])
	}
	return out
}

// ObjectNode holds named children with unique keys.
type ObjectNode struct {
	key string
	childSet
}

// NewObjectNode creates an empty object.
func NewObjectNode(key string) *ObjectNode {
	return &ObjectNode{key: key, childSet: newChildSet()}
}

func (n *ObjectNode) Key() string { return n.key }

func (n *ObjectNode) AddChild(child Node) { n.add(child.Key(), child) }

func (n *ObjectNode) AddChildAccumulating(child Node) { n.addAccumulating(child.Key(), child) }

func (n *ObjectNode) Child(key string) (Node, bool) { return n.child(key) }

func (n *ObjectNode) Children() []Node { return n.all() }

// Len returns the number of direct children.
func (n *ObjectNode) Len() int { return len(n.children) }

func (*ObjectNode) node() {}

// DateNode is a historical block keyed by a calendar date. It behaves like
// an object for its children and additionally carries the parsed Date.
type DateNode struct {
	key  string
	date Date
	childSet
}

// NewDateNode creates an empty date block. The key is the date's source
// text (e.g. "1444.11.11").
func NewDateNode(key string, date Date) *DateNode {
	return &DateNode{key: key, date: date, childSet: newChildSet()}
}

func (n *DateNode) Key() string { return n.key }

// Date returns the block's parsed calendar date.
func (n *DateNode) Date() Date { return n.date }

func (n *DateNode) AddChild(child Node) { n.add(child.Key(), child) }

func (n *DateNode) AddChildAccumulating(child Node) { n.addAccumulating(child.Key(), child) }

func (n *DateNode) Child(key string) (Node, bool) { return n.child(key) }

func (n *DateNode) Children() []Node { return n.all() }

func (*DateNode) node() {}

// GetChild returns the direct child of n with the given key. It returns
// false if n is not a container or has no such child.
func GetChild(n Node, key string) (Node, bool) {
	c, ok := n.(Container)
	if !ok {
		return nil, false
	}
	return c.Child(key)
}

// HasChild reports whether n has a direct child with the given key.
func HasChild(n Node, key string) bool {
	_, ok := GetChild(n, key)
	return ok
}

// GetChildren returns the children stored under key as a uniform sequence:
// a ListNode yields its items, any other node yields itself, and an absent
// key yields nil. This normalizes single-value and repeated-key shapes so
// callers never branch on the representation.
func GetChildren(n Node, key string) []Node {
	child, ok := GetChild(n, key)
	if !ok {
		return nil
	}
	if list, ok := child.(*ListNode); ok {
		return list.Items()
	}
	return []Node{child}
}
