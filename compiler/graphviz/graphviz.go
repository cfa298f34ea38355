package graphviz

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/mirlang/mirl/compiler/mir"
)

type (
	// Resolver maps a function id to its display path.
	Resolver interface {
		PathToString(id mir.FuncID) string
	}

	// RowFunc injects extra table rows (html `<tr>` elements) into a
	// node label. It must emit complete rows no wider than the numCols
	// the label was rendered with.
	RowFunc func(w io.Writer) error
)

// WriteMIR writes a DOT digraph of every function in the package.
// Emission is sequential and stops at the first write error.
// A nil res resolves function paths through the package itself.
func WriteMIR(ctx context.Context, w io.Writer, pkg *mir.Package, res Resolver) (err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "mir graphviz", "path", pkg.Path, "funcs", len(pkg.Funcs))
	defer tr.Finish("err", &err)

	if res == nil {
		res = pkg
	}

	for _, fn := range pkg.Funcs {
		err = WriteFunc(ctx, w, fn, res)
		if err != nil {
			return errors.Wrap(err, "func %v", fn.Name)
		}
	}

	return nil
}

// WriteFunc writes one digraph: global style, the caption, a node per
// basic block and an edge per terminator successor, in block order.
func WriteFunc(ctx context.Context, w io.Writer, fn *mir.Func, res Resolver) (err error) {
	tlog.SpanFromContext(ctx).V("write_func").Printw("write func graph", "id", fn.ID, "name", fn.Name, "blocks", len(fn.Blocks), "from", loc.Caller(1))

	_, err = fmt.Fprintf(w, `digraph Mir_%d {
    graph [fontname="monospace"];
    node [fontname="monospace"];
    edge [fontname="monospace"];
`, fn.ID)
	if err != nil {
		return errors.Wrap(err, "header")
	}

	err = writeGraphLabel(w, fn, res)
	if err != nil {
		return errors.Wrap(err, "graph label")
	}

	for b := range fn.Blocks {
		err = writeNode(w, fn, mir.BlockID(b))
		if err != nil {
			return errors.Wrap(err, "node %v", nodeName(mir.BlockID(b)))
		}
	}

	for b := range fn.Blocks {
		err = writeEdges(w, fn, mir.BlockID(b))
		if err != nil {
			return errors.Wrap(err, "edges %v", nodeName(mir.BlockID(b)))
		}
	}

	_, err = io.WriteString(w, "}\n")
	if err != nil {
		return errors.Wrap(err, "footer")
	}

	return nil
}

// WriteNodeLabel writes the html-like label table for block b of fn:
// block index header, injected before rows, statements, terminator head,
// injected after rows. before and after may be nil. numCols must match
// the widest row the callbacks emit; that is on the caller.
func WriteNodeLabel(w io.Writer, fn *mir.Func, b mir.BlockID, numCols int, before, after RowFunc) (err error) {
	data := &fn.Blocks[b]

	// Block index on top, shaded.
	_, err = fmt.Fprintf(w, `<table border="0" cellborder="1" cellspacing="0">`+
		`<tr><td bgcolor="gray" align="center" colspan="%d">%d</td></tr>`, numCols, b)
	if err != nil {
		return err
	}

	if before != nil {
		err = before(w)
		if err != nil {
			return err
		}
	}

	if len(data.Stmts) != 0 {
		_, err = io.WriteString(w, `<tr><td align="left" balign="left">`)
		if err != nil {
			return err
		}

		for _, st := range data.Stmts {
			_, err = fmt.Fprintf(w, "%s<br/>", escape(st))
			if err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, `</td></tr>`)
		if err != nil {
			return err
		}
	}

	// Terminator head only. Successors go onto edge labels.
	_, err = fmt.Fprintf(w, `<tr><td align="left">%s</td></tr>`, EscapeHTML(data.Term.Head()))
	if err != nil {
		return err
	}

	if after != nil {
		err = after(w)
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, "</table>\n")

	return err
}

func writeNode(w io.Writer, fn *mir.Func, b mir.BlockID) (err error) {
	_, err = fmt.Fprintf(w, `    %s [shape="none", label=<`, nodeName(b))
	if err != nil {
		return err
	}

	err = WriteNodeLabel(w, fn, b, 1, nil, nil)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, ">];\n")

	return err
}

func writeEdges(w io.Writer, fn *mir.Func, b mir.BlockID) (err error) {
	term := fn.Blocks[b].Term

	succ := term.Successors()
	labels := term.SuccessorLabels()

	if len(succ) != len(labels) {
		panic(fmt.Sprintf("%T: %d successors, %d edge labels", term, len(succ), len(labels)))
	}

	for i, to := range succ {
		_, err = fmt.Fprintf(w, "    %s -> %s [label=%q];\n", nodeName(b), nodeName(to), labels[i])
		if err != nil {
			return err
		}
	}

	return nil
}

// writeGraphLabel writes the whole-graph caption: the function signature
// and its variable and temporary declarations with types.
func writeGraphLabel(w io.Writer, fn *mir.Func, res Resolver) (err error) {
	_, err = fmt.Fprintf(w, "    label=<fn %s(", EscapeHTML(res.PathToString(fn.ID)))
	if err != nil {
		return err
	}

	for i, arg := range fn.Args {
		if i > 0 {
			_, err = io.WriteString(w, ", ")
			if err != nil {
				return err
			}
		}

		_, err = fmt.Fprintf(w, "%s: %s", mir.Arg(i), escape(arg.Type))
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, ") -&gt; ")
	if err != nil {
		return err
	}

	if fn.Ret != nil {
		_, err = io.WriteString(w, escape(fn.Ret))
	} else {
		_, err = io.WriteString(w, "!")
	}
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, `<br align="left"/>`)
	if err != nil {
		return err
	}

	for i, v := range fn.Vars {
		mut := ""
		if v.Mut {
			mut = "mut "
		}

		_, err = fmt.Fprintf(w, `let %s%s: %s; // %s<br align="left"/>`, mut, mir.Var(i), escape(v.Type), EscapeHTML(v.Name))
		if err != nil {
			return err
		}
	}

	for i, tmp := range fn.Temps {
		_, err = fmt.Fprintf(w, `let mut %s: %s;<br align="left"/>`, mir.Temp(i), escape(tmp.Type))
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, ">;\n")

	return err
}

func nodeName(b mir.BlockID) string {
	return "bb" + strconv.Itoa(int(b))
}
