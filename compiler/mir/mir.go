package mir

import (
	"strconv"

	"tlog.app/go/tlog/tlwire"
)

type (
	FuncID  int
	BlockID int

	// Type is the pretty-printer contract for declaration types.
	// Implementations live in compiler/tp.
	Type interface {
		String() string
	}

	// Statement renders itself to debug text before any escaping.
	Statement interface {
		String() string
	}

	LvalueKind int

	// Lvalue is a slot reference: a function argument, a user variable,
	// a compiler temporary or the return slot.
	Lvalue struct {
		Kind  LvalueKind
		Index int
	}

	ArgDecl struct {
		Type Type
	}

	VarDecl struct {
		Mut  bool
		Name string
		Type Type
	}

	TempDecl struct {
		Type Type
	}

	// Block is a basic block: ordered statements and exactly one terminator.
	Block struct {
		Stmts []Statement
		Term  Terminator
	}

	// Func is the control-flow graph of one compiled function.
	// Blocks are identified by their index. Ret == nil means the
	// function diverges.
	Func struct {
		ID   FuncID
		Name string

		Args  []ArgDecl
		Vars  []VarDecl
		Temps []TempDecl

		Ret Type

		Blocks []Block
	}

	Package struct {
		Path string

		Funcs []*Func
	}

	Assign struct {
		Dst Lvalue
		Src string
	}

	Nop struct{}
)

const NoBlock BlockID = -1

const (
	LvArg LvalueKind = iota
	LvVar
	LvTemp
	LvRet
)

func Arg(i int) Lvalue  { return Lvalue{Kind: LvArg, Index: i} }
func Var(i int) Lvalue  { return Lvalue{Kind: LvVar, Index: i} }
func Temp(i int) Lvalue { return Lvalue{Kind: LvTemp, Index: i} }
func RetSlot() Lvalue   { return Lvalue{Kind: LvRet} }

func (l Lvalue) String() string {
	switch l.Kind {
	case LvArg:
		return "arg" + strconv.Itoa(l.Index)
	case LvVar:
		return "var" + strconv.Itoa(l.Index)
	case LvTemp:
		return "tmp" + strconv.Itoa(l.Index)
	case LvRet:
		return "return"
	default:
		panic(l.Kind)
	}
}

func (l Lvalue) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	return e.AppendString(b, l.String())
}

func (x Assign) String() string {
	return x.Dst.String() + " = " + x.Src
}

func (Nop) String() string {
	return "nop"
}

// PathToString is the default function path resolver.
func (p *Package) PathToString(id FuncID) string {
	for _, f := range p.Funcs {
		if f.ID == id {
			return p.Path + "::" + f.Name
		}
	}

	return p.Path + "::fn" + strconv.Itoa(int(id))
}
