package tp

import "strings"

type (
	Type interface {
		Size() int
		String() string
	}

	Name string

	Func struct {
		In  []Type
		Out []Type
	}

	Int struct {
		Bits   int16
		Signed bool
	}

	Untyped struct{}

	Ptr struct {
		X Type
	}

	Array struct {
		X   Type
		Len int
	}

	Struct struct {
		Fields []StructField
	}

	StructField struct {
		Name   string
		Offset int
		Type   Type
	}
)

func (x Int) Size() int {
	return int(x.Bits) / 8
}

func (x Ptr) Size() int {
	return 8
}

func (x Func) Size() int {
	return 8
}

func (x Untyped) Size() int {
	return 0
}

// Size of a named type is not known until the name is resolved.
func (x Name) Size() int {
	return 0
}

func (x Array) Size() int {
	return x.X.Size() * x.Len
}

func (x Struct) Size() (s int) {
	for _, f := range x.Fields {
		s += f.Type.Size()
	}

	return s
}

func (x Int) String() string {
	var b []byte

	if x.Signed {
		b = append(b, 'i')
	} else {
		b = append(b, 'u')
	}

	b = appendInt(b, int(x.Bits))

	return string(b)
}

func (x Ptr) String() string {
	return "*" + x.X.String()
}

func (x Array) String() string {
	var b []byte

	b = append(b, '[')
	b = appendInt(b, x.Len)
	b = append(b, ']')
	b = append(b, x.X.String()...)

	return string(b)
}

func (x Struct) String() string {
	var b strings.Builder

	b.WriteString("struct{")

	for i, f := range x.Fields {
		if i != 0 {
			b.WriteString("; ")
		}

		if f.Name != "" {
			b.WriteString(f.Name)
			b.WriteByte(' ')
		}

		b.WriteString(f.Type.String())
	}

	b.WriteString("}")

	return b.String()
}

func (x Func) String() string {
	var b strings.Builder

	b.WriteString("func(")

	for i, t := range x.In {
		if i != 0 {
			b.WriteString(", ")
		}

		b.WriteString(t.String())
	}

	b.WriteString(")")

	switch len(x.Out) {
	case 0:
	case 1:
		b.WriteString(" ")
		b.WriteString(x.Out[0].String())
	default:
		b.WriteString(" (")

		for i, t := range x.Out {
			if i != 0 {
				b.WriteString(", ")
			}

			b.WriteString(t.String())
		}

		b.WriteString(")")
	}

	return b.String()
}

func (x Untyped) String() string {
	return "untyped"
}

func (x Name) String() string {
	return string(x)
}

func appendInt(b []byte, x int) []byte {
	if x == 0 {
		return append(b, '0')
	}

	if x < 0 {
		b = append(b, '-')
		x = -x
	}

	st := len(b)

	for x != 0 {
		b = append(b, byte('0'+x%10))
		x /= 10
	}

	for i, j := st, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return b
}
