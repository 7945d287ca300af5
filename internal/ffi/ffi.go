// Package ffi converts between caller-owned (pointer, length) pairs and Go
// values. Every buffer handed to the caller comes from the C allocator and is
// released with Free.
package ffi

/*
#include <stdlib.h>
*/
import "C"

import (
	"bytes"
	"strings"
	"unsafe"
)

// Bytes copies n bytes starting at ptr. A nil ptr yields nil.
func Bytes(ptr unsafe.Pointer, n uint32) []byte {
	if ptr == nil {
		return nil
	}
	return bytes.Clone(unsafe.Slice((*byte)(ptr), int(n)))
}

// String decodes a non NUL-terminated string. Invalid UTF-8 sequences are
// replaced with U+FFFD. ok is false when ptr is nil.
func String(ptr unsafe.Pointer, n uint32) (s string, ok bool) {
	if ptr == nil {
		return "", false
	}
	return strings.ToValidUTF8(string(unsafe.Slice((*byte)(ptr), int(n))), "\uFFFD"), true
}

// StringOr is String with a default for a nil ptr.
func StringOr(ptr unsafe.Pointer, n uint32, def string) string {
	if s, ok := String(ptr, n); ok {
		return s
	}
	return def
}

// SetBytes allocates len(data) bytes, copies data into them and stores the
// buffer in *out and its length in *outLen. A nil out is a no-op.
func SetBytes(out *unsafe.Pointer, outLen *uint32, data []byte) {
	if out == nil {
		return
	}
	p := alloc(len(data))
	copy(unsafe.Slice((*byte)(p), len(data)), data)
	*out = p
	if outLen != nil {
		*outLen = uint32(len(data))
	}
}

func SetString(out *unsafe.Pointer, outLen *uint32, s string) {
	SetBytes(out, outLen, []byte(s))
}

// SetStrings writes the values comma-joined.
func SetStrings(out *unsafe.Pointer, outLen *uint32, values []string) {
	SetBytes(out, outLen, []byte(strings.Join(values, ",")))
}

// SetUint32s writes values as a packed native-endian array; *count receives
// the number of elements, not bytes.
func SetUint32s(out *unsafe.Pointer, count *uint32, values []uint32) {
	if out == nil {
		return
	}
	p := alloc(len(values) * 4)
	copy(unsafe.Slice((*uint32)(p), len(values)), values)
	*out = p
	if count != nil {
		*count = uint32(len(values))
	}
}

// Set stores v in *out unless out is nil.
func Set[T any](out *T, v T) {
	if out != nil {
		*out = v
	}
}

// Free releases a buffer produced by this package and nulls the caller's
// pointer. nil and already-freed pointers are ignored.
func Free(ptr *unsafe.Pointer) {
	if ptr == nil || *ptr == nil {
		return
	}
	C.free(*ptr)
	*ptr = nil
}

// alloc never returns nil; malloc(0) may, so at least one byte is requested.
// Allocation failure aborts inside the C runtime.
func alloc(n int) unsafe.Pointer {
	if n < 1 {
		n = 1
	}
	return C.malloc(C.size_t(n))
}
