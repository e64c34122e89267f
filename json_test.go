package hashmap

import (
	"testing"

	"github.com/guimauveb/hashmap/hash"
)

func TestMarshalJSON(t *testing.T) {
	uint32Map := New[uint32, string](func(k1, k2 uint32) bool { return k1 == k2 }, hash.UInt32)
	uint32Map.Insert(1, "a")
	uint32Map.Insert(2, "b")
	testMarshalJSON(t, uint32Map, `{"1":"a","2":"b"}`, false)

	stringMap := New[string, int](stringEqual, hash.String)
	stringMap.Insert("k", 1)
	testMarshalJSON(t, stringMap, `{"k":1}`, false)

	// Slices cannot be JSON object keys.
	sliceMap := New[[]int, string](
		func(k1, k2 []int) bool { return false },
		func(k []int) uint32 { return 0 })
	sliceMap.Insert([]int{}, "x")
	testMarshalJSON(t, sliceMap, "", true)
}

func testMarshalJSON[K, V any](t *testing.T, m *Map[K, V], wantOut string, wantErr bool) {
	t.Helper()
	out, err := m.MarshalJSON()
	if string(out) != wantOut {
		t.Errorf("m.MarshalJSON -> out %s, want %s", out, wantOut)
	}
	if (err != nil) != wantErr {
		var want string
		if wantErr {
			want = "non-nil"
		} else {
			want = "nil"
		}
		t.Errorf("m.MarshalJSON -> err %v, want %s", err, want)
	}
}
