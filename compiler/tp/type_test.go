package tp

import "testing"

func TestString(t *testing.T) {
	i64 := Int{Bits: 64, Signed: true}
	u8 := Int{Bits: 8}

	for _, tc := range []struct {
		x   Type
		exp string
	}{
		{i64, "i64"},
		{u8, "u8"},
		{Ptr{X: i64}, "*i64"},
		{Array{X: u8, Len: 4}, "[4]u8"},
		{Struct{}, "struct{}"},
		{Struct{Fields: []StructField{{Name: "a", Type: i64}, {Name: "b", Type: Ptr{X: u8}}}}, "struct{a i64; b *u8}"},
		{Func{In: []Type{i64, i64}, Out: []Type{i64}}, "func(i64, i64) i64"},
		{Func{Out: []Type{i64, u8}}, "func() (i64, u8)"},
		{Func{}, "func()"},
		{Untyped{}, "untyped"},
		{Name("Point"), "Point"},
		{Ptr{X: Name("Point")}, "*Point"},
	} {
		if s := tc.x.String(); s != tc.exp {
			t.Errorf("%T: %q, wanted %q", tc.x, s, tc.exp)
		}
	}
}

func TestSize(t *testing.T) {
	i64 := Int{Bits: 64, Signed: true}
	u8 := Int{Bits: 8}

	for _, tc := range []struct {
		x   Type
		exp int
	}{
		{i64, 8},
		{u8, 1},
		{Ptr{X: u8}, 8},
		{Array{X: i64, Len: 3}, 24},
		{Struct{Fields: []StructField{{Type: i64}, {Type: u8}}}, 9},
		{Func{}, 8},
		{Untyped{}, 0},
		{Name("Point"), 0},
	} {
		if s := tc.x.Size(); s != tc.exp {
			t.Errorf("%v: size %v, wanted %v", tc.x, s, tc.exp)
		}
	}
}
