package record

import (
	"github.com/ssargent/recfactory/pkg/alloc"
)

// Input is the caller-supplied part of a Person.
type Input struct {
	Name string `json:"name" yaml:"name"`
	Age  int    `json:"age" yaml:"age"`
}

// Factory creates Person records using an allocator for storage accounting.
// It keeps no reference to the records it creates.
type Factory struct {
	allocator alloc.Allocator
}

// NewFactory creates a factory backed by a. A nil allocator uses the heap.
func NewFactory(a alloc.Allocator) *Factory {
	if a == nil {
		a = alloc.HeapAllocator{}
	}
	return &Factory{allocator: a}
}

// Allocator returns the allocator backing the factory.
func (f *Factory) Allocator() alloc.Allocator {
	return f.allocator
}

// Create builds a new Person from name and age.
//
// The name is truncated to MaxNameLen bytes without error. Age is stored as
// given. The only failure is an *AllocationError, in which case the returned
// Person is nil.
func (f *Factory) Create(name string, age int) (*Person, error) {
	if err := f.allocator.Allocate(RecordSize); err != nil {
		return nil, &AllocationError{Size: RecordSize, Err: err}
	}

	return &Person{
		Name:  NewName(name),
		Age:   age,
		Score: 0,
		owner: f.allocator,
	}, nil
}

// CreateAll creates one Person per input. If any allocation fails, every
// record created by this call is released and only the error is returned.
func (f *Factory) CreateAll(inputs []Input) ([]*Person, error) {
	people := make([]*Person, 0, len(inputs))
	for _, in := range inputs {
		p, err := f.Create(in.Name, in.Age)
		if err != nil {
			ReleaseAll(people)
			return nil, err
		}
		people = append(people, p)
	}
	return people, nil
}

// ReleaseAll releases every record in people.
func ReleaseAll(people []*Person) {
	for _, p := range people {
		p.Release()
	}
}

var defaultFactory = NewFactory(alloc.HeapAllocator{})

// Create builds a Person with the process-default heap factory.
func Create(name string, age int) (*Person, error) {
	return defaultFactory.Create(name, age)
}
