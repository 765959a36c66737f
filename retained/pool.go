package retained

import "sync"

// Layout passes snapshot the item list under the container lock before
// measuring and placing outside it. Pooling the snapshot slices keeps rapid
// mutation bursts (drags, bulk inserts) from allocating per pass.

var contentSlicePool = sync.Pool{
	New: func() any {
		return make([]Content, 0, 16)
	},
}

// acquireContentSlice gets a content slice with len == n from the pool.
// Caller must call releaseContentSlice when done.
func acquireContentSlice(n int) []Content {
	slice := contentSlicePool.Get().([]Content)
	if cap(slice) < n {
		contentSlicePool.Put(slice[:0])
		return make([]Content, n, n*2)
	}
	return slice[:n]
}

// releaseContentSlice returns a slice to the pool. The slice must not be
// used afterwards.
func releaseContentSlice(slice []Content) {
	if slice == nil {
		return
	}
	for i := range slice {
		slice[i] = nil
	}
	if cap(slice) <= 256 {
		contentSlicePool.Put(slice[:0])
	}
}
