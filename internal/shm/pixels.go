package shm

import (
	"unsafe"
)

// Uint32s reinterprets b as native-endian 32-bit words. Trailing bytes that do
// not fill a whole word are dropped. b must be 4-byte aligned, which holds for
// page-aligned mappings.
func Uint32s(b []byte) []uint32 {
	n := len(b) / 4
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&b[0])), n)
}
