// Command asigntse is built with -buildmode=c-shared. It exports the device
// API and the configuration API as C functions. Every function taking a
// device name also has a variant bound to the "default" device.
package main

/*
#include <stdint.h>
#include <stdbool.h>
*/
import "C"

import (
	"context"
	"sculink/internal/capi"
	"sculink/internal/ffi"
	"sculink/internal/retcode"
	"sculink/internal/types"
	"unsafe"
)

func main() {}

func adapter() *capi.Adapter { return capi.Default() }

func ctx() context.Context { return context.Background() }

func rc(code retcode.Code) C.int32_t { return C.int32_t(code) }

// device decodes a device name; NULL or an empty name selects the default
// device.
func device(p *C.char, n C.uint32_t) string {
	if name := ffi.StringOr(unsafe.Pointer(p), uint32(n), ""); name != "" {
		return name
	}
	return types.DefaultDeviceName
}

func str(p *C.char, n C.uint32_t) string {
	return ffi.StringOr(unsafe.Pointer(p), uint32(n), "")
}

func data(p *C.uint8_t, n C.uint32_t) []byte {
	return ffi.Bytes(unsafe.Pointer(p), uint32(n))
}

func buffer[T any](p **T, n *C.uint32_t) capi.Buffer {
	return capi.Buffer{
		Ptr: (*unsafe.Pointer)(unsafe.Pointer(p)),
		Len: (*uint32)(unsafe.Pointer(n)),
	}
}

func u32(p *C.uint32_t) *uint32 { return (*uint32)(unsafe.Pointer(p)) }
func i32(p *C.int32_t) *int32   { return (*int32)(unsafe.Pointer(p)) }
func i64(p *C.int64_t) *int64   { return (*int64)(unsafe.Pointer(p)) }

//export at_free
func at_free(ptr *unsafe.Pointer) {
	capi.Free(ptr)
}

//export asigntse_free
func asigntse_free(ptr *unsafe.Pointer) {
	capi.Free(ptr)
}
