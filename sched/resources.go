package sched

import (
	"reflect"

	"github.com/kamstrup/intmap"
)

// ResourceRegistry assigns a stable id to every resource type. Types must be
// registered before they can be stored.
type ResourceRegistry struct {
	ids   map[reflect.Type]uint32
	types []reflect.Type
}

// NewResourceRegistry creates an empty registry.
func NewResourceRegistry() *ResourceRegistry {
	return &ResourceRegistry{
		ids: make(map[reflect.Type]uint32),
	}
}

// RegisterResource registers T and returns its id. Registering the same type
// twice returns the original id.
func RegisterResource[T any](r *ResourceRegistry) uint32 {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if id, ok := r.ids[t]; ok {
		return id
	}
	id := uint32(len(r.types) + 1)
	r.ids[t] = id
	r.types = append(r.types, t)
	return id
}

func (r *ResourceRegistry) mustId(t reflect.Type) uint32 {
	id, ok := r.ids[t]
	if !ok {
		panic("resource type " + t.String() + " not registered")
	}
	return id
}

// Resources holds at most one value of each registered type.
type Resources struct {
	registry *ResourceRegistry
	values   *intmap.Map[uint32, any]
}

// NewResources creates an empty resource store backed by registry.
func NewResources(registry *ResourceRegistry) *Resources {
	return &Resources{
		registry: registry,
		values:   intmap.New[uint32, any](len(registry.types)),
	}
}

func resourceId[T any](res *Resources) uint32 {
	return res.registry.mustId(reflect.TypeOf((*T)(nil)).Elem())
}

// Insert stores value, replacing any previous value of the same type, and
// returns a pointer to the stored copy.
func Insert[T any](res *Resources, value T) *T {
	ptr := new(T)
	*ptr = value
	res.values.Put(resourceId[T](res), ptr)
	return ptr
}

// Get returns the stored value of type T, or nil if none has been inserted.
func Get[T any](res *Resources) *T {
	v, ok := res.values.Get(resourceId[T](res))
	if !ok {
		return nil
	}
	return v.(*T)
}

// Remove deletes the stored value of type T.
func Remove[T any](res *Resources) bool {
	return res.values.Del(resourceId[T](res))
}

// Len returns the number of stored resources.
func (res *Resources) Len() int {
	return res.values.Len()
}

// Names returns the type names of the stored resources in registration order.
func (res *Resources) Names() []string {
	names := make([]string, 0, res.values.Len())
	for i, t := range res.registry.types {
		if res.values.Has(uint32(i + 1)) {
			names = append(names, t.String())
		}
	}
	return names
}
