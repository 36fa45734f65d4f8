// Package input turns window state into one snapshot per frame.
//
// Keys and the cursor are polled at the top of the frame. Scroll and
// framebuffer-resize notifications only arrive through window callbacks, so
// they are queued as they come in and drained by the next Poll in arrival
// order.
package input

// Key identifies a keyboard key. Values are the window library's key codes.
type Key int

// Source is the window state read once per frame.
type Source interface {
	KeyDown(k Key) bool
	CursorPos() (x, y float64)
}

type EventKind int

const (
	Scroll EventKind = iota
	Resize
)

// Event is a queued callback notification.
type Event struct {
	Kind EventKind

	// Scroll offsets
	X, Y float64

	// Resize framebuffer size in pixels
	Width, Height int
}

// Frame is the input observed during one frame.
type Frame struct {
	held    map[Key]bool
	pressed map[Key]bool

	// Cursor movement since the previous frame. DY is positive when the
	// cursor moves up the screen.
	CursorDX, CursorDY float32

	// Sum of vertical scroll offsets drained this frame. Consumers that
	// clamp per step should walk Events instead.
	ScrollY float32

	// Events drained this frame, oldest first.
	Events []Event
}

// Held reports whether k is down this frame.
func (f Frame) Held(k Key) bool { return f.held[k] }

// Pressed reports whether k went down this frame. Holding a key reports
// true only on the first frame.
func (f Frame) Pressed(k Key) bool { return f.pressed[k] }

// Resized returns the most recent framebuffer size drained this frame.
func (f Frame) Resized() (width, height int, ok bool) {
	for i := len(f.Events) - 1; i >= 0; i-- {
		if e := f.Events[i]; e.Kind == Resize {
			return e.Width, e.Height, true
		}
	}
	return 0, 0, false
}

// Poller builds Frames from a Source plus the callback queue.
type Poller struct {
	watched []Key
	prev    map[Key]bool

	// TrackCursor enables cursor deltas. The first sample after enabling
	// yields a zero delta.
	TrackCursor bool
	lastX       float64
	lastY       float64
	seenCursor  bool

	queue []Event
}

// NewPoller returns a poller that watches keys.
func NewPoller(keys ...Key) *Poller {
	p := &Poller{prev: make(map[Key]bool)}
	p.Watch(keys...)
	return p
}

// Watch adds keys to the polled set. Duplicates are ignored.
func (p *Poller) Watch(keys ...Key) {
	for _, k := range keys {
		if !p.watching(k) {
			p.watched = append(p.watched, k)
		}
	}
}

func (p *Poller) watching(k Key) bool {
	for _, w := range p.watched {
		if w == k {
			return true
		}
	}
	return false
}

// PushScroll queues a scroll notification.
func (p *Poller) PushScroll(x, y float64) {
	p.queue = append(p.queue, Event{Kind: Scroll, X: x, Y: y})
}

// PushResize queues a framebuffer resize notification.
func (p *Poller) PushResize(width, height int) {
	p.queue = append(p.queue, Event{Kind: Resize, Width: width, Height: height})
}

// Poll reads src, drains the queue and returns this frame's input.
func (p *Poller) Poll(src Source) Frame {
	f := Frame{
		held:    make(map[Key]bool, len(p.watched)),
		pressed: make(map[Key]bool),
	}

	for _, k := range p.watched {
		down := src.KeyDown(k)
		if down {
			f.held[k] = true
			if !p.prev[k] {
				f.pressed[k] = true
			}
		}
		p.prev[k] = down
	}

	if p.TrackCursor {
		x, y := src.CursorPos()
		if !p.seenCursor {
			p.lastX, p.lastY = x, y
			p.seenCursor = true
		}
		f.CursorDX = float32(x - p.lastX)
		f.CursorDY = float32(p.lastY - y) // window y grows downwards
		p.lastX, p.lastY = x, y
	}

	if len(p.queue) > 0 {
		f.Events = p.queue
		p.queue = nil
		for _, e := range f.Events {
			if e.Kind == Scroll {
				f.ScrollY += float32(e.Y)
			}
		}
	}

	return f
}
