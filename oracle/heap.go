package oracle

import "github.com/katalvlaran/negcycle/weight"

// addrHeap is a binary min-heap over node ids, addressable by node id so a
// key can be decreased in place instead of pushing a stale duplicate entry,
// via a pos[] side table that keeps decreaseKey at O(log n) instead of
// O(n).
//
// Ties break on node id so that iteration order — and therefore which node
// a query settles first among equal-key candidates — is deterministic
// given a fixed seed.
type addrHeap[T weight.Numeric] struct {
	nodes []int32 // nodes[i] = node id stored at heap slot i
	keys  []T     // keys[node] = current key for node, valid only while pos[node] >= 0
	pos   []int32 // pos[node] = heap slot index, or -1 if node is not in the heap
}

func newAddrHeap[T weight.Numeric](n int) *addrHeap[T] {
	pos := make([]int32, n)
	for i := range pos {
		pos[i] = -1
	}
	return &addrHeap[T]{
		nodes: make([]int32, 0, n),
		keys:  make([]T, n),
		pos:   pos,
	}
}

func (h *addrHeap[T]) len() int { return len(h.nodes) }

// peek returns the key of the minimum node without removing it.
func (h *addrHeap[T]) peek() T { return h.keys[h.nodes[0]] }

func (h *addrHeap[T]) contains(node int32) bool { return h.pos[node] >= 0 }

func (h *addrHeap[T]) less(i, j int32) bool {
	ni, nj := h.nodes[i], h.nodes[j]
	ki, kj := h.keys[ni], h.keys[nj]
	if ki != kj {
		return weight.Less(ki, kj)
	}
	return ni < nj
}

func (h *addrHeap[T]) swap(i, j int32) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.pos[h.nodes[i]] = i
	h.pos[h.nodes[j]] = j
}

func (h *addrHeap[T]) siftUp(i int32) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *addrHeap[T]) siftDown(i int32) {
	n := int32(len(h.nodes))
	for {
		l, r, smallest := 2*i+1, 2*i+2, i
		if l < n && h.less(l, smallest) {
			smallest = l
		}
		if r < n && h.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// push inserts node with the given key. node must not already be in the heap.
func (h *addrHeap[T]) push(node int32, key T) {
	h.keys[node] = key
	slot := int32(len(h.nodes))
	h.nodes = append(h.nodes, node)
	h.pos[node] = slot
	h.siftUp(slot)
}

// decreaseKey lowers node's key. It is a no-op if key is not strictly
// smaller than node's current key.
func (h *addrHeap[T]) decreaseKey(node int32, key T) {
	if !weight.Less(key, h.keys[node]) {
		return
	}
	h.keys[node] = key
	h.siftUp(h.pos[node])
}

// pushOrDecrease inserts node if absent, otherwise decreases its key.
func (h *addrHeap[T]) pushOrDecrease(node int32, key T) {
	if h.contains(node) {
		h.decreaseKey(node, key)
		return
	}
	h.push(node, key)
}

// popMin removes and returns the node with the smallest key.
func (h *addrHeap[T]) popMin() (node int32, key T) {
	node = h.nodes[0]
	key = h.keys[node]
	last := int32(len(h.nodes) - 1)
	h.swap(0, last)
	h.nodes = h.nodes[:last]
	h.pos[node] = -1
	if last > 0 {
		h.siftDown(0)
	}
	return node, key
}

// reset clears every entry currently in the heap. Callers own tracking of
// which nodes were touched; reset is O(size), never O(n), because the heap
// only ever grows to the number of nodes actually visited by a query.
func (h *addrHeap[T]) reset() {
	for _, node := range h.nodes {
		h.pos[node] = -1
	}
	h.nodes = h.nodes[:0]
}
