package hash

import (
	"testing"
	"unsafe"
)

func TestString(t *testing.T) {
	if String("") != Init {
		t.Errorf("String(\"\") = %d, want %d", String(""), Init)
	}
	if String("a") != Combine(Init, 'a') {
		t.Errorf("String(\"a\") = %d, want %d", String("a"), Combine(Init, 'a'))
	}
	if String("foobar") != String("foobar") {
		t.Errorf("String is not deterministic")
	}
	if String("foo") == String("bar") {
		t.Errorf("String(\"foo\") and String(\"bar\") collide")
	}
}

func TestBytes(t *testing.T) {
	if Bytes(nil) != Init {
		t.Errorf("Bytes(nil) = %d, want %d", Bytes(nil), Init)
	}
	if Bytes([]byte("foobar")) != String("foobar") {
		t.Errorf("Bytes and String disagree on identical content")
	}
}

func TestUInt64(t *testing.T) {
	u := uint64(0x1234567890abcdef)
	want := Combine(uint32(u>>32), uint32(u&0xffffffff))
	if UInt64(u) != want {
		t.Errorf("UInt64(%x) = %d, want %d", u, UInt64(u), want)
	}
}

func TestFold(t *testing.T) {
	if Fold() != Init {
		t.Errorf("Fold() = %d, want %d", Fold(), Init)
	}
	if Fold(1, 2) != Combine(Combine(Init, 1), 2) {
		t.Errorf("Fold(1, 2) does not combine in order")
	}
	if Fold(1, 2) == Fold(2, 1) {
		t.Errorf("Fold(1, 2) and Fold(2, 1) collide")
	}
}

func TestPointer(t *testing.T) {
	x := 0
	p := unsafe.Pointer(&x)
	if Pointer(p) != UIntPtr(uintptr(p)) {
		t.Errorf("Pointer and UIntPtr disagree on the same address")
	}
}
