// Package record builds fixed-layout Person records.
//
// A Person carries a bounded name, an age and a score. Records are produced
// by a Factory, owned entirely by the caller, and ended with Release.
//
// # Layout
//
// The name lives in a fixed buffer of Capacity (100) bytes:
//
//	[name bytes ... (at most 99)][0 ... 0]
//	                             ^ index 99 is always 0
//
// At most MaxNameLen (99) bytes are stored. The byte at index Capacity-1 is
// always the terminator, whatever the input length.
//
// # Truncation
//
// Names longer than MaxNameLen are cut silently. Truncation is not an error
// and is never reported. The cut happens:
//   - at the first NUL byte of the input, if there is one
//   - otherwise at MaxNameLen bytes, moved back to the start of the rune it
//     would split so the stored name stays valid UTF-8
//
// # Usage
//
//	factory := record.NewFactory(alloc.NewBudgetAllocator(64 << 10))
//
//	p, err := factory.Create("Alice", 30)
//	if err != nil {
//	    if errors.Is(err, record.ErrAllocation) {
//	        // storage could not be obtained; no record exists
//	    }
//	    return err
//	}
//	defer p.Release()
//
//	fmt.Println(p) // Name: Alice, Age: 30
//
// # Errors
//
// The only failure is allocation failure. It is reported as an
// *AllocationError that matches ErrAllocation with errors.Is and wraps the
// allocator's own error.
//
// # Thread Safety
//
// A Factory is safe for concurrent use when its allocator is. Person values
// are plain data owned by one caller; Release must not race with itself.
package record
