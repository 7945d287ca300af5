package ffi

import (
	"bytes"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/suite"
)

type FFITestSuite struct {
	suite.Suite
}

func TestFFITestSuite(t *testing.T) {
	suite.Run(t, new(FFITestSuite))
}

func (s *FFITestSuite) roundTrip(data []byte) {
	var p unsafe.Pointer
	var n uint32
	SetBytes(&p, &n, data)
	defer Free(&p)

	s.Require().NotNil(p)
	s.Equal(uint32(len(data)), n)
	got := Bytes(p, n)
	s.True(bytes.Equal(data, got))
}

func (s *FFITestSuite) TestRoundTrip() {
	s.roundTrip([]byte{})
	s.roundTrip([]byte{0x42})

	large := make([]byte, 70*1024+3)
	for i := range large {
		large[i] = byte(i * 31)
	}
	s.roundTrip(large)
}

func (s *FFITestSuite) TestFreeIsIdempotent() {
	var p unsafe.Pointer
	var n uint32
	SetString(&p, &n, "hello")
	Free(&p)
	s.Nil(p)
	Free(&p)
	s.Nil(p)

	var never unsafe.Pointer
	Free(&never)
	Free(nil)
}

func (s *FFITestSuite) TestNilOutputIsNoop() {
	var n uint32 = 7
	SetBytes(nil, &n, []byte("abc"))
	s.Equal(uint32(7), n)
	SetUint32s(nil, &n, []uint32{1})
	s.Equal(uint32(7), n)
	Set[int64](nil, 5)
}

func (s *FFITestSuite) TestStringDecoding() {
	raw := []byte("ok\xffok")
	str, ok := String(unsafe.Pointer(&raw[0]), uint32(len(raw)))
	s.True(ok)
	s.Equal("ok\uFFFDok", str)

	_, ok = String(nil, 3)
	s.False(ok)
	s.Equal("fallback", StringOr(nil, 0, "fallback"))

	part := []byte("default-device")
	s.Equal("default", StringOr(unsafe.Pointer(&part[0]), 7, "x"))
}

func (s *FFITestSuite) TestStringsAreCommaJoined() {
	var p unsafe.Pointer
	var n uint32
	SetStrings(&p, &n, []string{"MIIa", "MIIb"})
	defer Free(&p)
	s.Equal("MIIa,MIIb", string(Bytes(p, n)))
}

func (s *FFITestSuite) TestUint32sArePacked() {
	var p unsafe.Pointer
	var count uint32
	SetUint32s(&p, &count, []uint32{7, 1 << 20, 42})
	defer Free(&p)

	s.Equal(uint32(3), count)
	s.Equal([]uint32{7, 1 << 20, 42}, unsafe.Slice((*uint32)(p), count))
}

func (s *FFITestSuite) TestScalars() {
	var tx uint32
	var ts int64
	Set(&tx, uint32(12))
	Set(&ts, int64(-1))
	s.Equal(uint32(12), tx)
	s.Equal(int64(-1), ts)
}
