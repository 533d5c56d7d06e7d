// SPDX-License-Identifier: MIT

package network

// Nodes assigns dense ids to labels in first-seen order.
// The zero value is not usable; call NewNodes or Dedup.
type Nodes struct {
	index  map[string]int
	labels []string
	reps   []int // first instance index per id
	seen   int
}

// NewNodes returns an empty table.
func NewNodes() *Nodes {
	return &Nodes{index: make(map[string]int)}
}

// Add registers one instance and returns its node id. The first instance
// carrying a label becomes that node's representative.
// Complexity: O(1) amortized.
func (n *Nodes) Add(label string) int {
	inst := n.seen
	n.seen++
	if id, ok := n.index[label]; ok {
		return id
	}
	id := len(n.labels)
	n.index[label] = id
	n.labels = append(n.labels, label)
	n.reps = append(n.reps, inst)

	return id
}

// ID looks up the id of label.
func (n *Nodes) ID(label string) (int, bool) {
	id, ok := n.index[label]
	return id, ok
}

// Representative returns the instance index that introduced node id.
func (n *Nodes) Representative(id int) int { return n.reps[id] }

// Len returns the number of distinct labels.
func (n *Nodes) Len() int { return len(n.labels) }

// Labels returns a copy of the labels indexed by id.
func (n *Nodes) Labels() []string {
	out := make([]string, len(n.labels))
	copy(out, n.labels)

	return out
}

// Dedup builds a Nodes table over labels and returns the instance→node map.
// Complexity: O(n).
func Dedup(labels []string) (*Nodes, []int) {
	nodes := NewNodes()
	ids := make([]int, len(labels))
	for i, l := range labels {
		ids[i] = nodes.Add(l)
	}

	return nodes, ids
}
