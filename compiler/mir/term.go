package mir

import "strings"

type (
	// Terminator is the closed set of block-ending instructions.
	// Successors and SuccessorLabels are index-aligned and of equal
	// length: SuccessorLabels()[i] describes the edge to Successors()[i].
	// Head is the instruction summary without the successor list.
	Terminator interface {
		Head() string
		Successors() []BlockID
		SuccessorLabels() []string
	}

	Goto struct {
		Target BlockID
	}

	If struct {
		Cond string

		Then BlockID
		Else BlockID
	}

	// Switch dispatches on Disc. Targets holds one block per value plus
	// the otherwise block last: len(Targets) == len(Values)+1.
	Switch struct {
		Disc string

		Values  []string
		Targets []BlockID
	}

	Call struct {
		Dst    Lvalue
		HasDst bool

		Func string
		Args []string

		Ret    BlockID // NoBlock if the call never returns
		Unwind BlockID // NoBlock if there is no cleanup block
	}

	Return struct{}

	Resume struct{}

	Unreachable struct{}
)

func (t Goto) Head() string              { return "goto" }
func (t Goto) Successors() []BlockID     { return []BlockID{t.Target} }
func (t Goto) SuccessorLabels() []string { return []string{""} }

func (t If) Head() string              { return "if (" + t.Cond + ")" }
func (t If) Successors() []BlockID     { return []BlockID{t.Then, t.Else} }
func (t If) SuccessorLabels() []string { return []string{"true", "false"} }

func (t Switch) Head() string {
	return "switch (" + t.Disc + ")"
}

func (t Switch) Successors() []BlockID {
	return t.Targets
}

func (t Switch) SuccessorLabels() []string {
	l := make([]string, 0, len(t.Values)+1)
	l = append(l, t.Values...)
	l = append(l, "otherwise")

	return l
}

func (t Call) Head() string {
	call := t.Func + "(" + strings.Join(t.Args, ", ") + ")"

	if t.HasDst {
		return t.Dst.String() + " = " + call
	}

	return call
}

func (t Call) Successors() (s []BlockID) {
	if t.Ret != NoBlock {
		s = append(s, t.Ret)
	}

	if t.Unwind != NoBlock {
		s = append(s, t.Unwind)
	}

	return s
}

func (t Call) SuccessorLabels() (l []string) {
	if t.Ret != NoBlock {
		l = append(l, "return")
	}

	if t.Unwind != NoBlock {
		l = append(l, "unwind")
	}

	return l
}

func (Return) Head() string              { return "return" }
func (Return) Successors() []BlockID     { return nil }
func (Return) SuccessorLabels() []string { return nil }

func (Resume) Head() string              { return "resume" }
func (Resume) Successors() []BlockID     { return nil }
func (Resume) SuccessorLabels() []string { return nil }

func (Unreachable) Head() string              { return "unreachable" }
func (Unreachable) Successors() []BlockID     { return nil }
func (Unreachable) SuccessorLabels() []string { return nil }
