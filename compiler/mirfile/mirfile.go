// Package mirfile decodes a yaml description of mir functions.
// It is the input format of the mirl tool: block lists with statement
// text and one terminator per block, plus typed declarations.
package mirfile

import (
	"context"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/mirlang/mirl/compiler/mir"
	"github.com/mirlang/mirl/compiler/tp"
)

type (
	filePackage struct {
		Path  string     `yaml:"path"`
		Funcs []fileFunc `yaml:"funcs"`
	}

	fileFunc struct {
		Name string `yaml:"name"`

		Args  []string  `yaml:"args"`
		Vars  []fileVar `yaml:"vars"`
		Temps []string  `yaml:"temps"`

		Ret string `yaml:"ret"`

		Blocks []fileBlock `yaml:"blocks"`
	}

	fileVar struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
		Mut  bool   `yaml:"mut"`
	}

	fileBlock struct {
		Stmts []string `yaml:"stmts"`
		Term  fileTerm `yaml:"term"`
	}

	fileTerm struct {
		Goto        *int        `yaml:"goto"`
		If          *fileIf     `yaml:"if"`
		Switch      *fileSwitch `yaml:"switch"`
		Call        *fileCall   `yaml:"call"`
		Return      bool        `yaml:"return"`
		Resume      bool        `yaml:"resume"`
		Unreachable bool        `yaml:"unreachable"`
	}

	fileIf struct {
		Cond string `yaml:"cond"`
		Then int    `yaml:"then"`
		Else int    `yaml:"else"`
	}

	fileSwitch struct {
		Disc    string   `yaml:"disc"`
		Values  []string `yaml:"values"`
		Targets []int    `yaml:"targets"`
	}

	fileCall struct {
		Dst  string   `yaml:"dst"`
		Func string   `yaml:"func"`
		Args []string `yaml:"args"`

		Ret    *int `yaml:"ret"`
		Unwind *int `yaml:"unwind"`
	}
)

// Decode parses a yaml package description into mir.
// Function ids are assigned in file order.
func Decode(ctx context.Context, text []byte) (*mir.Package, error) {
	var f filePackage

	err := yaml.Unmarshal(text, &f)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal yaml")
	}

	tlog.SpanFromContext(ctx).V("decode").Printw("decoded package", "path", f.Path, "funcs", len(f.Funcs))

	p := &mir.Package{Path: f.Path}

	for id, fd := range f.Funcs {
		fn, err := decodeFunc(fd, mir.FuncID(id))
		if err != nil {
			return nil, errors.Wrap(err, "func %v", fd.Name)
		}

		p.Funcs = append(p.Funcs, fn)
	}

	return p, nil
}

func decodeFunc(fd fileFunc, id mir.FuncID) (*mir.Func, error) {
	fn := &mir.Func{
		ID:   id,
		Name: fd.Name,
	}

	for _, a := range fd.Args {
		t, err := parseType(a)
		if err != nil {
			return nil, errors.Wrap(err, "arg %v", len(fn.Args))
		}

		fn.Args = append(fn.Args, mir.ArgDecl{Type: t})
	}

	for _, v := range fd.Vars {
		t, err := parseType(v.Type)
		if err != nil {
			return nil, errors.Wrap(err, "var %v", v.Name)
		}

		fn.Vars = append(fn.Vars, mir.VarDecl{Mut: v.Mut, Name: v.Name, Type: t})
	}

	for _, tm := range fd.Temps {
		t, err := parseType(tm)
		if err != nil {
			return nil, errors.Wrap(err, "temp %v", len(fn.Temps))
		}

		fn.Temps = append(fn.Temps, mir.TempDecl{Type: t})
	}

	switch fd.Ret {
	case "!": // diverging
	case "":
		fn.Ret = tp.Struct{}
	default:
		t, err := parseType(fd.Ret)
		if err != nil {
			return nil, errors.Wrap(err, "ret")
		}

		fn.Ret = t
	}

	for i, bd := range fd.Blocks {
		b, err := decodeBlock(bd, len(fd.Blocks))
		if err != nil {
			return nil, errors.Wrap(err, "block %v", i)
		}

		fn.Blocks = append(fn.Blocks, b)
	}

	return fn, nil
}

func decodeBlock(bd fileBlock, nblocks int) (b mir.Block, err error) {
	for i, s := range bd.Stmts {
		st, err := parseStmt(s)
		if err != nil {
			return b, errors.Wrap(err, "stmt %v", i)
		}

		b.Stmts = append(b.Stmts, st)
	}

	b.Term, err = decodeTerm(bd.Term, nblocks)
	if err != nil {
		return b, errors.Wrap(err, "terminator")
	}

	return b, nil
}

func decodeTerm(td fileTerm, nblocks int) (mir.Terminator, error) {
	var term mir.Terminator

	set := func(t mir.Terminator) error {
		if term != nil {
			return errors.New("more than one terminator")
		}

		term = t

		return nil
	}

	ref := func(b int) (mir.BlockID, error) {
		if b < 0 || b >= nblocks {
			return mir.NoBlock, errors.New("block ref out of range: %v", b)
		}

		return mir.BlockID(b), nil
	}

	optRef := func(b *int) (mir.BlockID, error) {
		if b == nil {
			return mir.NoBlock, nil
		}

		return ref(*b)
	}

	if td.Goto != nil {
		to, err := ref(*td.Goto)
		if err != nil {
			return nil, err
		}

		err = set(mir.Goto{Target: to})
		if err != nil {
			return nil, err
		}
	}

	if td.If != nil {
		then, err := ref(td.If.Then)
		if err != nil {
			return nil, err
		}

		els, err := ref(td.If.Else)
		if err != nil {
			return nil, err
		}

		err = set(mir.If{Cond: td.If.Cond, Then: then, Else: els})
		if err != nil {
			return nil, err
		}
	}

	if td.Switch != nil {
		if len(td.Switch.Targets) != len(td.Switch.Values)+1 {
			return nil, errors.New("switch: %v values want %v targets, got %v",
				len(td.Switch.Values), len(td.Switch.Values)+1, len(td.Switch.Targets))
		}

		sw := mir.Switch{Disc: td.Switch.Disc, Values: td.Switch.Values}

		for _, t := range td.Switch.Targets {
			to, err := ref(t)
			if err != nil {
				return nil, err
			}

			sw.Targets = append(sw.Targets, to)
		}

		err := set(sw)
		if err != nil {
			return nil, err
		}
	}

	if td.Call != nil {
		ret, err := optRef(td.Call.Ret)
		if err != nil {
			return nil, err
		}

		unwind, err := optRef(td.Call.Unwind)
		if err != nil {
			return nil, err
		}

		call := mir.Call{Func: td.Call.Func, Args: td.Call.Args, Ret: ret, Unwind: unwind}

		if td.Call.Dst != "" {
			call.Dst, err = parseLvalue(td.Call.Dst)
			if err != nil {
				return nil, err
			}

			call.HasDst = true
		}

		err = set(call)
		if err != nil {
			return nil, err
		}
	}

	if td.Return {
		err := set(mir.Return{})
		if err != nil {
			return nil, err
		}
	}

	if td.Resume {
		err := set(mir.Resume{})
		if err != nil {
			return nil, err
		}
	}

	if td.Unreachable {
		err := set(mir.Unreachable{})
		if err != nil {
			return nil, err
		}
	}

	if term == nil {
		return nil, errors.New("no terminator")
	}

	return term, nil
}

func parseStmt(s string) (mir.Statement, error) {
	if s == "nop" {
		return mir.Nop{}, nil
	}

	dst, src, ok := strings.Cut(s, " = ")
	if !ok {
		return nil, errors.New("unsupported statement: %v", s)
	}

	lv, err := parseLvalue(dst)
	if err != nil {
		return nil, errors.Wrap(err, "dst")
	}

	return mir.Assign{Dst: lv, Src: src}, nil
}

func parseLvalue(s string) (mir.Lvalue, error) {
	if s == "return" {
		return mir.RetSlot(), nil
	}

	for _, p := range []struct {
		prefix string
		mk     func(int) mir.Lvalue
	}{
		{"arg", mir.Arg},
		{"var", mir.Var},
		{"tmp", mir.Temp},
	} {
		rest, ok := strings.CutPrefix(s, p.prefix)
		if !ok {
			continue
		}

		i, err := strconv.Atoi(rest)
		if err != nil || i < 0 {
			return mir.Lvalue{}, errors.New("bad slot index: %v", s)
		}

		return p.mk(i), nil
	}

	return mir.Lvalue{}, errors.New("bad slot: %v", s)
}

func parseType(s string) (tp.Type, error) {
	switch {
	case s == "":
		return nil, errors.New("empty type")
	case s[0] == '*':
		x, err := parseType(s[1:])
		if err != nil {
			return nil, err
		}

		return tp.Ptr{X: x}, nil
	case s[0] == '[':
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, errors.New("bad array type: %v", s)
		}

		n, err := strconv.Atoi(s[1:end])
		if err != nil || n < 0 {
			return nil, errors.New("bad array len: %v", s)
		}

		x, err := parseType(s[end+1:])
		if err != nil {
			return nil, err
		}

		return tp.Array{X: x, Len: n}, nil
	case s == "unit":
		return tp.Struct{}, nil
	}

	if (s[0] == 'i' || s[0] == 'u') && allDigits(s[1:]) {
		bits, err := strconv.Atoi(s[1:])
		if err != nil || bits <= 0 || bits > math.MaxInt16 {
			return nil, errors.New("unsupported int width: %v", s)
		}

		return tp.Int{Bits: int16(bits), Signed: s[0] == 'i'}, nil
	}

	if !isIdent(s) {
		return nil, errors.New("unsupported type: %v", s)
	}

	return tp.Name(s), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return len(s) != 0
}

func isIdent(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}

	return len(s) != 0
}
