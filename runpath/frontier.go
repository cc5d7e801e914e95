package runpath

import "container/heap"

// frontierItem is one queued (state, accumulated cost) pair. The state is
// stored as its best-cost table key.
type frontierItem struct {
	key  int
	cost int64
}

// frontier is a min-heap of frontierItem ordered by cost ascending.
// It follows the lazy-decrease-key pattern: a cheaper relaxation pushes a
// new item and the outdated one is dropped when popped.
type frontier []frontierItem

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].cost < f[j].cost }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

// Push is called by heap.Push; x must be a frontierItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierItem)) }

// Pop is called by heap.Pop and returns the last element.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}

// push enqueues key at cost.
func (f *frontier) push(key int, cost int64) {
	heap.Push(f, frontierItem{key: key, cost: cost})
}

// pop removes and returns the cheapest item. The frontier must be non-empty.
func (f *frontier) pop() frontierItem {
	return heap.Pop(f).(frontierItem)
}
