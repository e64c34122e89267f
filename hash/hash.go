// Package hash contains some common hash functions suitable for use in hash
// maps.
package hash

import "unsafe"

// 32-bit FNV-1a parameters.
const (
	Init  uint32 = 2166136261
	prime uint32 = 16777619
)

// Combine folds h into the accumulator acc.
func Combine(acc, h uint32) uint32 {
	return (acc ^ h) * prime
}

// Fold combines any number of hash results into one.
func Fold(hs ...uint32) uint32 {
	acc := Init
	for _, h := range hs {
		acc = Combine(acc, h)
	}
	return acc
}

func UInt32(u uint32) uint32 {
	return u
}

func UInt64(u uint64) uint32 {
	return Combine(uint32(u>>32), uint32(u&0xffffffff))
}

func Pointer(p unsafe.Pointer) uint32 {
	switch unsafe.Sizeof(p) {
	case 4:
		return UInt32(uint32(uintptr(p)))
	case 8:
		return UInt64(uint64(uintptr(p)))
	default:
		panic("unhandled pointer size")
	}
}

func UIntPtr(p uintptr) uint32 {
	switch unsafe.Sizeof(p) {
	case 4:
		return UInt32(uint32(p))
	case 8:
		return UInt64(uint64(p))
	default:
		panic("unhandled pointer size")
	}
}

func String(s string) uint32 {
	h := Init
	for i := 0; i < len(s); i++ {
		h = Combine(h, uint32(s[i]))
	}
	return h
}

func Bytes(bs []byte) uint32 {
	h := Init
	for _, b := range bs {
		h = Combine(h, uint32(b))
	}
	return h
}
