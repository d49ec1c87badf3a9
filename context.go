package fiber

import "github.com/sitano/fiber/internal/handle"

// State describes where a context is in its lifecycle. State transitions
// happen only inside the switch protocol, so a driver observes a stable
// value whenever control is on its side of a switch.
type State int32

const (
	// Uninitialized is the state of a context that has never been launched.
	Uninitialized State = iota

	// Running is the state of the single context currently executing on its
	// scheduler.
	Running

	// Suspended is the state of a context parked at a Leave call, holding a
	// valid saved resume point.
	Suspended

	// Done is the state of a context whose fiber function has returned. A
	// Done context is never resumed again.
	Done
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Suspended:
		return "suspended"
	case Done:
		return "done"
	default:
		return "invalid"
	}
}

// Context is the record of one fiber: its saved execution state and a
// back-reference to the context that most recently resumed it.
//
// The saved execution state is the fiber's goroutine parked on the resume
// channel; waking the channel resumes the fiber exactly at the point where
// it last yielded, with all of its stack intact. The back-reference is a
// link to the most recent resumer, not to the creator: it is rewritten on
// every Begin and Enter, so a chain of switches unwinds in exact reverse
// resumption order.
type Context struct {
	sched  *Sched
	link   *Context
	resume chan struct{}
	state  State
	stack  *Stack
	fn     func(*Context)
	id     handle.ID
}

// State reports the context's lifecycle state.
func (c *Context) State() State { return c.state }

// Done reports whether the fiber function has returned. A Done context
// must not be entered again.
func (c *Context) Done() bool { return c.state == Done }

// Link returns the context that most recently resumed this one, or nil if
// it has never been resumed.
func (c *Context) Link() *Context { return c.link }

// Enter resumes a suspended fiber. It records the calling context as the
// back-reference, makes this context current, and transfers control to the
// fiber's saved resume point. Enter returns when the fiber next calls
// Leave or when its function returns.
//
// Entering a context that is not suspended is a protocol violation: the
// saved state needed to resume it does not exist, so Enter panics rather
// than continue.
func (c *Context) Enter() {
	switch c.state {
	case Done:
		panic("fiber.Enter: context has terminated")
	case Suspended:
	default:
		panic("fiber.Enter: context is not suspended")
	}
	s := c.sched
	prev := s.current
	c.link = prev
	s.current = c
	prev.state = Suspended
	c.state = Running
	c.resume <- struct{}{}
	<-prev.resume
}

// Leave yields the running fiber back to its most recent resumer. The
// fiber's state is saved; a later Enter resumes it at the point of this
// call with its stack intact. Leave must be called by fiber code on its
// own, currently running context.
func (c *Context) Leave() {
	s := c.sched
	if s == nil || s.current != c {
		panic("fiber.Leave: context is not running")
	}
	prev := c.link
	if prev == nil {
		panic("fiber.Leave: context has no resumer")
	}
	s.current = prev
	c.state = Suspended
	prev.state = Running
	prev.resume <- struct{}{}
	<-c.resume
}

// end transfers control to the back-referenced context without saving any
// state for this one. It runs when the fiber function returns and is the
// only way a context reaches Done. Unlike Leave this is a one-way switch:
// the fiber's goroutine exits right after the handoff.
func (c *Context) end() {
	s := c.sched
	prev := c.link
	s.current = prev
	c.state = Done
	c.stack.unbind()
	contexts.Release(c.id)
	prev.state = Running
	prev.resume <- struct{}{}
}
