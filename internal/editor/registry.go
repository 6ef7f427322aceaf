package editor

import "sync"

// Registry owns the set of open buffers. It answers liveness queries
// for buffer ids held elsewhere and maintains most-recently-used
// ordering for the fallback "other buffer" selection.
type Registry struct {
	mu      sync.RWMutex
	buffers map[BufferID]*Buffer
	mru     []BufferID // most recent first
}

// NewRegistry creates an empty buffer registry.
func NewRegistry() *Registry {
	return &Registry{
		buffers: make(map[BufferID]*Buffer),
	}
}

// Open creates a buffer with the given display name and content and
// registers it as the most recently used.
func (r *Registry) Open(name, path, content string) *Buffer {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := newBuffer(name, path, content)
	r.buffers[b.id] = b
	r.mru = append([]BufferID{b.id}, r.mru...)
	return b
}

// Get returns the buffer with the given id, if it is still open.
func (r *Registry) Get(id BufferID) (*Buffer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.buffers[id]
	return b, ok
}

// IsLive reports whether id still refers to an open buffer.
func (r *Registry) IsLive(id BufferID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.buffers[id]
	return ok
}

// Close removes the buffer from the registry. Ids held elsewhere
// become stale and fail liveness checks; nothing dangles.
func (r *Registry) Close(id BufferID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.buffers[id]; !ok {
		return false
	}
	delete(r.buffers, id)
	for i, existing := range r.mru {
		if existing == id {
			r.mru = append(r.mru[:i], r.mru[i+1:]...)
			break
		}
	}
	return true
}

// Touch marks id as the most recently used buffer.
func (r *Registry) Touch(id BufferID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.buffers[id]; !ok {
		return
	}
	for i, existing := range r.mru {
		if existing == id {
			r.mru = append(r.mru[:i], r.mru[i+1:]...)
			break
		}
	}
	r.mru = append([]BufferID{id}, r.mru...)
}

// MostRecentOther returns the most recently used open buffer other
// than current. This is the host's fallback choice when an extension
// has no better candidate.
func (r *Registry) MostRecentOther(current BufferID) (*Buffer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.mru {
		if id == current {
			continue
		}
		if b, ok := r.buffers[id]; ok {
			return b, true
		}
	}
	return nil, false
}

// Len returns the number of open buffers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.buffers)
}

// All returns the open buffers in most-recently-used order.
func (r *Registry) All() []*Buffer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Buffer, 0, len(r.mru))
	for _, id := range r.mru {
		if b, ok := r.buffers[id]; ok {
			out = append(out, b)
		}
	}
	return out
}
