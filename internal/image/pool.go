package image

import "sync"

// Pool is a thread-safe pool for reusing TexelBuf instances.
//
// Pool groups buffers by their geometry, so repeated decodes of same-sized
// textures reuse memory instead of allocating.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*TexelBuf
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identical buffer geometry.
type poolKey struct {
	width  int
	height int
	pitch  int
}

// NewPool creates a new pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*TexelBuf),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a zeroed buffer from the pool or creates a new one.
// Returns nil for invalid geometry.
func (p *Pool) Get(width, height, pitch int) *TexelBuf {
	key := poolKey{width: width, height: height, pitch: pitch}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	buf, err := NewTexelBufWithPitch(width, height, pitch)
	if err != nil {
		return nil
	}
	return buf
}

// Put returns a buffer to the pool. The buffer is cleared before being
// stored. If buf is nil or the bucket is at capacity, it is discarded.
func (p *Pool) Put(buf *TexelBuf) {
	if buf == nil {
		return
	}

	buf.Clear()

	key := poolKey{width: buf.width, height: buf.height, pitch: buf.pitch}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of pooled buffers across all buckets.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

// defaultPool is the package-level pool for convenient usage.
var defaultPool = NewPool(8)

// GetFromDefault retrieves a buffer from the default pool.
func GetFromDefault(width, height, pitch int) *TexelBuf {
	return defaultPool.Get(width, height, pitch)
}

// PutToDefault returns a buffer to the default pool.
func PutToDefault(buf *TexelBuf) {
	defaultPool.Put(buf)
}
