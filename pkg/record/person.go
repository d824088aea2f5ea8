package record

import (
	"fmt"
	"unsafe"

	"github.com/ssargent/recfactory/pkg/alloc"
)

// RecordSize is the storage accounted for one Person.
const RecordSize = int(unsafe.Sizeof(Person{}))

// Person is a fixed-layout record. Score is always 0 when created.
type Person struct {
	Name  Name
	Age   int
	Score float64

	owner alloc.Allocator // nil once released
}

// Release returns the record's storage to the allocator it came from.
// Calling Release more than once, or on a nil Person, does nothing.
func (p *Person) Release() {
	if p == nil || p.owner == nil {
		return
	}
	owner := p.owner
	p.owner = nil
	owner.Free(RecordSize)
}

// Released reports whether Release has been called.
func (p *Person) Released() bool {
	return p == nil || p.owner == nil
}

// Greeting returns the greeting line for the person.
func (p *Person) Greeting() string {
	return fmt.Sprintf("Hello, %s!", p.Name.String())
}

// String implements fmt.Stringer.
func (p *Person) String() string {
	return fmt.Sprintf("Name: %s, Age: %d", p.Name.String(), p.Age)
}
