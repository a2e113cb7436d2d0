package core

// FrameID identifies a pending frame callback. Zero is never issued.
type FrameID uint64

// frameRequest is a callback waiting for the next display frame.
type frameRequest struct {
	id FrameID
	fn func()
}

// FrameQueue schedules callbacks for the next display frame, in the manner
// of a browser's requestAnimationFrame. The platform calls Flush once per
// frame; callbacks requested during a flush run on the following frame.
// It is not safe for concurrent use: all calls happen on the UI thread.
type FrameQueue struct {
	lastID   FrameID
	pending  []frameRequest
	flushing []frameRequest
}

// NewFrameQueue creates an empty frame queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// Request schedules fn for the next Flush and returns its handle.
func (q *FrameQueue) Request(fn func()) FrameID {
	q.lastID++
	q.pending = append(q.pending, frameRequest{id: q.lastID, fn: fn})
	return q.lastID
}

// Cancel drops a scheduled callback. Unknown or already-run IDs are ignored.
func (q *FrameQueue) Cancel(id FrameID) {
	for i := range q.pending {
		if q.pending[i].id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	// A callback may cancel a sibling that is part of the current flush.
	for i := range q.flushing {
		if q.flushing[i].id == id {
			q.flushing[i].fn = nil
			return
		}
	}
}

// Pending returns the number of callbacks waiting for the next frame.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Flush runs every callback requested before this call and returns how many ran.
func (q *FrameQueue) Flush() int {
	q.flushing = q.pending
	q.pending = nil

	ran := 0
	for i := range q.flushing {
		fn := q.flushing[i].fn
		if fn == nil {
			continue
		}
		q.flushing[i].fn = nil
		fn()
		ran++
	}
	q.flushing = nil
	return ran
}
