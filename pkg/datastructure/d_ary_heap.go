package datastructure

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var ErrHeapEmpty = errors.New("heap is empty")

type PriorityQueueNode[T comparable, R constraints.Ordered] struct {
	rank    R
	item    T
	itemPos int
}

func (p *PriorityQueueNode[T, R]) GetItem() T {
	return p.item
}

func (p *PriorityQueueNode[T, R]) GetRank() R {
	return p.rank
}

func (p *PriorityQueueNode[T, R]) SetRank(rank R) {
	p.rank = rank
}

func (p *PriorityQueueNode[T, R]) SetPos(i int) {
	p.itemPos = i
}

func (p *PriorityQueueNode[T, R]) GetPos() int {
	return p.itemPos
}

func NewPriorityQueueNode[T comparable, R constraints.Ordered](rank R, item T) *PriorityQueueNode[T, R] {
	return &PriorityQueueNode[T, R]{rank: rank, item: item}
}

// MinHeap d-ary heap priorityqueue
type MinHeap[T comparable, R constraints.Ordered] struct {
	heap []*PriorityQueueNode[T, R]
	d    int
}

func NewBinaryHeap[T comparable, R constraints.Ordered]() *MinHeap[T, R] {
	return NewdAryHeap[T, R](2)
}

func NewFourAryHeap[T comparable, R constraints.Ordered]() *MinHeap[T, R] {
	return NewdAryHeap[T, R](4)
}

func NewdAryHeap[T comparable, R constraints.Ordered](d int) *MinHeap[T, R] {
	return &MinHeap[T, R]{
		heap: make([]*PriorityQueueNode[T, R], 0),
		d:    d,
	}
}

func (h *MinHeap[T, R]) Preallocate(maxSearchSize int) {
	h.heap = make([]*PriorityQueueNode[T, R], 0, maxSearchSize)
}

// parent get index dari parent
func (h *MinHeap[T, R]) parent(index int) int {
	return (index - 1) / h.d
}

// heapifyUp mempertahankan heap property. check apakah parent dari index lebih besar kalau iya swap, then recursive ke parent.  O(logN) tree height.
func (h *MinHeap[T, R]) heapifyUp(index int) {
	for index != 0 && h.heap[index].rank < h.heap[h.parent(index)].rank {
		h.Swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown mempertahankan heap property. check apakah nilai salah satu children dari index lebih kecil kalau iya swap, then recursive ke children yang kecil tadi.  O(logN) tree height.
func (h *MinHeap[T, R]) heapifyDown(index int) {
	leftMostChild := index*h.d + 1
	if leftMostChild >= len(h.heap) {
		return
	}

	sentinel := leftMostChild + h.d
	if sentinel > len(h.heap) {
		sentinel = len(h.heap)
	}

	smallest := leftMostChild
	for i := leftMostChild + 1; i < sentinel; i++ {
		if h.heap[i].rank < h.heap[smallest].rank {
			smallest = i
		}
	}

	if h.heap[smallest].rank < h.heap[index].rank {
		h.Swap(index, smallest)

		h.heapifyDown(smallest)
	}
}

func (h *MinHeap[T, R]) Swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]

	h.heap[i].SetPos(i)
	h.heap[j].SetPos(j)
}

func (h *MinHeap[T, R]) IsEmpty() bool {
	return len(h.heap) == 0
}

func (h *MinHeap[T, R]) Size() int {
	return len(h.heap)
}

func (h *MinHeap[T, R]) Clear() {
	h.heap = make([]*PriorityQueueNode[T, R], 0)
}

// GetMin mendapatkan nilai minimum dari min-heap (index 0)
func (h *MinHeap[T, R]) GetMin() (*PriorityQueueNode[T, R], error) {
	if h.IsEmpty() {
		return &PriorityQueueNode[T, R]{}, ErrHeapEmpty
	}
	return h.heap[0], nil
}

// Insert item baru
func (h *MinHeap[T, R]) Insert(key *PriorityQueueNode[T, R]) {
	h.heap = append(h.heap, key)
	index := h.Size() - 1
	key.SetPos(index)
	h.heapifyUp(index)
}

// ExtractMin ambil nilai minimum dari min-heap (index 0) & pop dari heap. O(logN), heapifyDown(0) O(logN)
func (h *MinHeap[T, R]) ExtractMin() (*PriorityQueueNode[T, R], error) {
	if h.IsEmpty() {
		return &PriorityQueueNode[T, R]{}, ErrHeapEmpty
	}
	root := h.heap[0]

	h.Swap(0, h.Size()-1)

	h.heap = h.heap[:h.Size()-1]
	root.SetPos(-1)
	if len(h.heap) > 0 {
		h.heapifyDown(0)
	}

	return root, nil
}

// DecreaseKey update rank dari item min-heap.   O(logN) heapify.
func (h *MinHeap[T, R]) DecreaseKey(item *PriorityQueueNode[T, R], rank R) error {
	itemPos := item.GetPos()
	if itemPos < 0 || itemPos >= h.Size() || h.heap[itemPos].GetRank() < rank {
		return errors.New("invalid index or new value")
	}

	h.heap[itemPos].SetRank(rank)
	h.heapifyUp(itemPos)
	return nil
}
