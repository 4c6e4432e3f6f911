package arena

// Metrics contains statistical information about an arena.
type Metrics struct {
	SizeInUse   int     // Bytes handed out, including alignment padding
	Capacity    int     // Total bytes across all chunks
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Chunk size
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// SizeInUse returns the number of bytes currently handed out.
// This includes internal fragmentation due to alignment.
func (a *Arena) SizeInUse() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sizeInUse()
}

// NumChunks returns the number of chunks currently held by the arena.
func (a *Arena) NumChunks() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.chunks)
}

// Capacity returns the total capacity (in bytes) of all chunks.
func (a *Arena) Capacity() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.capacity()
}

// Utilization returns the ratio of bytes in use to total capacity.
// Returns 0.0 if the arena holds no chunks.
func (a *Arena) Utilization() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return utilization(a.sizeInUse(), a.capacity())
}

// ChunkSize returns the chunk size used by this arena.
func (a *Arena) ChunkSize() int {
	return a.chunkSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	a.mu.Lock()
	defer a.mu.Unlock()
	used, capacity := a.sizeInUse(), a.capacity()
	return Metrics{
		SizeInUse:   used,
		Capacity:    capacity,
		NumChunks:   len(a.chunks),
		ChunkSize:   a.chunkSize,
		Utilization: utilization(used, capacity),
	}
}

func (a *Arena) sizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += int(c.offset)
	}
	return sum
}

func (a *Arena) capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

func utilization(used, capacity int) float64 {
	if capacity == 0 {
		return 0
	}
	return float64(used) / float64(capacity)
}
