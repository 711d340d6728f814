package viecut

import (
	"fmt"

	da "github.com/lintang-b-s/Mincutx/pkg/datastructure"
	"github.com/lintang-b-s/Mincutx/pkg/engine"
)

// maxPriorityQueue orders vertices by connectivity to the already scanned set
// during a maximum adjacency ordering. Keys only ever increase.
type maxPriorityQueue interface {
	Insert(v da.Index, key int)
	IncreaseKey(v da.Index, key int)
	ExtractMax() (da.Index, int)
	IsEmpty() bool
}

// newMaxPriorityQueue falls back to the heap queue when the key range of a
// bucket queue would outgrow bucketLimit, since buckets are allocated per key.
func newMaxPriorityQueue(queueImpl engine.QueueImpl, numberOfVertices, maxKey int) (maxPriorityQueue, error) {
	if (queueImpl == engine.QUEUE_BQUEUE || queueImpl == engine.QUEUE_BSTACK) &&
		maxKey > bucketLimit(numberOfVertices) {
		return newHeapQueue(numberOfVertices), nil
	}

	switch queueImpl {
	case engine.QUEUE_BQUEUE:
		return newBucketQueue(numberOfVertices, maxKey, false), nil
	case engine.QUEUE_BSTACK:
		return newBucketQueue(numberOfVertices, maxKey, true), nil
	case engine.QUEUE_HEAP:
		return newHeapQueue(numberOfVertices), nil
	default:
		return nil, fmt.Errorf("%w: queue implementation %q", engine.ErrUnsupportedConfiguration, queueImpl)
	}
}

func bucketLimit(numberOfVertices int) int {
	return max(MIN_BUCKET_LIMIT, BUCKETS_PER_VERTEX*numberOfVertices)
}

/*
bucketQueue is a bucket priority queue over integer keys in [0, maxKey]. Stale
entries are left in their old bucket and skipped on extraction. Within a bucket
vertices leave in FIFO order (bqueue) or LIFO order (bstack).
*/
type bucketQueue struct {
	buckets [][]da.Index
	heads   []int
	key     []int
	inQueue []bool
	maxPtr  int
	size    int
	lifo    bool
}

func newBucketQueue(numberOfVertices, maxKey int, lifo bool) *bucketQueue {
	return &bucketQueue{
		buckets: make([][]da.Index, maxKey+1),
		heads:   make([]int, maxKey+1),
		key:     make([]int, numberOfVertices),
		inQueue: make([]bool, numberOfVertices),
		lifo:    lifo,
	}
}

func (bq *bucketQueue) push(v da.Index, key int) {
	bq.buckets[key] = append(bq.buckets[key], v)
	if key > bq.maxPtr {
		bq.maxPtr = key
	}
}

func (bq *bucketQueue) Insert(v da.Index, key int) {
	bq.key[v] = key
	bq.inQueue[v] = true
	bq.size++
	bq.push(v, key)
}

func (bq *bucketQueue) IncreaseKey(v da.Index, key int) {
	if !bq.inQueue[v] || key <= bq.key[v] {
		return
	}
	bq.key[v] = key
	bq.push(v, key)
}

func (bq *bucketQueue) ExtractMax() (da.Index, int) {
	for bq.maxPtr >= 0 {
		bucket := bq.buckets[bq.maxPtr]
		for bq.heads[bq.maxPtr] < len(bucket) {
			var v da.Index
			if bq.lifo {
				v = bucket[len(bucket)-1]
				bucket = bucket[:len(bucket)-1]
				bq.buckets[bq.maxPtr] = bucket
			} else {
				v = bucket[bq.heads[bq.maxPtr]]
				bq.heads[bq.maxPtr]++
			}

			if bq.inQueue[v] && bq.key[v] == bq.maxPtr {
				bq.inQueue[v] = false
				bq.size--
				return v, bq.maxPtr
			}
		}
		bq.buckets[bq.maxPtr] = bucket[:0]
		bq.heads[bq.maxPtr] = 0
		bq.maxPtr--
	}
	return da.INVALID_INDEX, 0
}

func (bq *bucketQueue) IsEmpty() bool {
	return bq.size == 0
}

// heapQueue is a max queue on top of the d-ary min heap with negated keys.
type heapQueue struct {
	heap  *da.MinHeap[da.Index, int]
	nodes []*da.PriorityQueueNode[da.Index, int]
}

func newHeapQueue(numberOfVertices int) *heapQueue {
	h := da.NewFourAryHeap[da.Index, int]()
	h.Preallocate(numberOfVertices)
	return &heapQueue{
		heap:  h,
		nodes: make([]*da.PriorityQueueNode[da.Index, int], numberOfVertices),
	}
}

func (hq *heapQueue) Insert(v da.Index, key int) {
	node := da.NewPriorityQueueNode(-key, v)
	hq.nodes[v] = node
	hq.heap.Insert(node)
}

func (hq *heapQueue) IncreaseKey(v da.Index, key int) {
	node := hq.nodes[v]
	if node == nil || node.GetPos() < 0 {
		return
	}
	_ = hq.heap.DecreaseKey(node, -key)
}

func (hq *heapQueue) ExtractMax() (da.Index, int) {
	node, err := hq.heap.ExtractMin()
	if err != nil {
		return da.INVALID_INDEX, 0
	}
	return node.GetItem(), -node.GetRank()
}

func (hq *heapQueue) IsEmpty() bool {
	return hq.heap.IsEmpty()
}
