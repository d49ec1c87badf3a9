package fiber

// Sched owns the current-context register for one driver thread: a single
// slot naming the context presently executing, mutated only by the switch
// protocol. It also holds the root context, the distinguished record for
// the thread's original execution before any fiber existed. The root is
// the implicit base of the resume chain; it has no back-reference, never
// runs fiber code, and is the resume target when the last fiber ends.
//
// Every thread that drives fibers must create its own Sched with Init
// before the first Begin. A Sched is thread-confined: it is never touched
// by more than one driver, so the register needs no locking.
type Sched struct {
	root    Context
	current *Context
}

// Init creates a scheduler for the calling thread. The returned scheduler's
// current context is the root context, representing the execution that
// called Init.
func Init() *Sched {
	s := new(Sched)
	s.root.sched = s
	s.root.state = Running
	s.root.resume = make(chan struct{})
	s.current = &s.root
	return s
}

// Root returns the scheduler's root context.
func (s *Sched) Root() *Context { return &s.root }

// Current returns the context presently executing on this scheduler.
func (s *Sched) Current() *Context { return s.current }

// Begin launches a fiber for the first time. It takes exclusive ownership
// of stack on behalf of c, records the calling context as c's
// back-reference, makes c current, and performs the first transfer onto
// the new stack through the bootstrap trampoline. Subsequent resumes go
// through the cheaper Enter; the full establishment done here is only ever
// needed once per fiber.
//
// Begin returns when the fiber first calls Leave on c, or immediately in
// the Done state if fn returned without yielding.
//
// Launching a context twice, or launching it on a stack that is already
// owned or released, is a protocol violation and panics.
func (s *Sched) Begin(c *Context, fn func(*Context), stack *Stack) {
	if c.state != Uninitialized {
		panic("fiber.Begin: context was already launched")
	}
	stack.bind(c)
	c.sched = s
	c.fn = fn
	c.stack = stack
	c.resume = make(chan struct{})
	c.id = contexts.Register(c)

	// The trampoline interface only carries machine-word-or-smaller
	// arguments, so the handle travels as two halves.
	lo, hi := splitHandle(uint64(c.id))

	prev := s.current
	c.link = prev
	s.current = c
	prev.state = Suspended
	c.state = Running
	go trampoline(lo, hi)
	<-prev.resume
}
