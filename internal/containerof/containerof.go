/*
Package containerof recovers the address of a struct from the address of one of its fields.
*/
package containerof

import "unsafe"

// Pointer returns the address of the C that embeds field at byte offset off.
//
// off must be unsafe.Offsetof of that exact field in C and field must point
// into a live C. The result stays within the same allocation, which keeps it
// valid under the unsafe.Pointer rules.
func Pointer[C, F any](field *F, off uintptr) *C {
	return (*C)(unsafe.Add(unsafe.Pointer(field), -int(off)))
}
