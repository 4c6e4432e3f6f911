package vec

// BufferMetrics contains statistical information about a buffer.
type BufferMetrics struct {
	Len           int     // Elements present
	Cap           int     // Elements the current block holds
	ElemSize      int     // Bytes per element
	SizeInUse     int     // Bytes holding elements
	CapacityBytes int     // Bytes in the current block
	Grows         int     // Growth events since New or Release
	Utilization   float64 // Ratio of Len to Cap (0.0-1.0)
}

// SizeInUse returns the number of bytes occupied by elements.
func (b *Buffer) SizeInUse() int {
	return b.length * b.elemSize
}

// CapacityBytes returns the size of the current backing block in bytes.
func (b *Buffer) CapacityBytes() int {
	return b.capacity * b.elemSize
}

// Grows returns how many times the buffer has reallocated since it was
// created or last released.
func (b *Buffer) Grows() int {
	return b.grows
}

// Utilization returns the ratio of length to capacity (0.0 to 1.0).
// Returns 0.0 if the buffer has no capacity.
func (b *Buffer) Utilization() float64 {
	if b.capacity == 0 {
		return 0
	}
	return float64(b.length) / float64(b.capacity)
}

// Metrics returns a snapshot of buffer statistics.
func (b *Buffer) Metrics() BufferMetrics {
	return BufferMetrics{
		Len:           b.length,
		Cap:           b.capacity,
		ElemSize:      b.elemSize,
		SizeInUse:     b.SizeInUse(),
		CapacityBytes: b.CapacityBytes(),
		Grows:         b.grows,
		Utilization:   b.Utilization(),
	}
}
