package sched

// Singleton gives a system typed access to one resource. Declare it as a
// field of a System; Scheduler.Register binds it automatically.
type Singleton[T any] struct {
	resources *Resources
	ptr       *T
}

// NewSingleton binds a Singleton outside of a system. If the resource does
// not exist it is created from initializer, or the zero value.
func NewSingleton[T any](resources *Resources, initializer ...T) *Singleton[T] {
	s := &Singleton[T]{}
	s.Init(resources)
	if s.ptr == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		s.ptr = Insert(resources, value)
	}
	return s
}

// Init binds the Singleton to a resource store. Called by the Scheduler.
func (s *Singleton[T]) Init(resources *Resources) {
	s.resources = resources
	s.ptr = nil
	s.refresh()
}

// Get returns the resource, or nil if it has not been inserted. The pointer
// is re-resolved if the resource was replaced since the last call.
func (s *Singleton[T]) Get() *T {
	s.refresh()
	return s.ptr
}

// Exists reports whether the resource has been inserted.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) refresh() {
	if s.resources == nil {
		return
	}
	s.ptr = Get[T](s.resources)
}
