package viecut

const (
	INVALID_LEVEL = -1

	// source of every s-t cut in the flow sweep
	SWEEP_SOURCE = 0

	// key range a bucket queue may allocate before the heap queue takes over
	MIN_BUCKET_LIMIT   = 1 << 16
	BUCKETS_PER_VERTEX = 64
)
