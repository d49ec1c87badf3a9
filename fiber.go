// Package fiber implements a minimal stackful fiber primitive: independent
// cooperative execution contexts, each backed by its own call stack, switched
// synchronously and deterministically without involvement of the OS thread
// scheduler.
//
// The package exposes the substrate that cooperative task runtimes (actor
// systems, async executors, green-thread libraries) are built on: a stack
// allocator, a per-fiber context record, and the four-operation switch
// protocol Begin/Enter/Leave/end. It defines no scheduling policy; deciding
// which fiber runs next is entirely the caller's concern.
//
// A driver obtains a Sched with Init, allocates a Stack and a Context per
// fiber, launches each fiber once with Sched.Begin, and then resumes fibers
// of its choosing with Context.Enter. Fiber code yields back to whoever
// resumed it by calling Leave on its own context. When a fiber function
// returns, control transfers one way to its resumer and the context can
// never be entered again.
//
// A switch is a total transfer of control: the context that performs it does
// not execute again until it is explicitly resumed. At most one context per
// scheduler is running at any instant, and a Sched together with every
// Context and Stack attached to it is confined to the single driver that
// created it; none of them may be shared across threads.
package fiber

// New returns a fresh, uninitialized context. It holds no execution state
// until it is launched with Sched.Begin.
func New() *Context {
	return new(Context)
}
