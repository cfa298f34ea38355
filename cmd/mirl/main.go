package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/mirlang/mirl/compiler"
	"github.com/mirlang/mirl/compiler/graphviz"
	"github.com/mirlang/mirl/compiler/mirfile"
	"github.com/mirlang/mirl/compiler/render"
)

func main() {
	dotCmd := &cli.Command{
		Name:   "dot",
		Action: dotAct,
		Args:   cli.Args{},
	}

	renderCmd := &cli.Command{
		Name:   "render",
		Action: renderAct,
		Args:   cli.Args{},
	}

	app := &cli.Command{
		Name:        "mirl",
		Description: "mirl is a tool for inspecting mir control-flow graphs",
		Commands: []*cli.Command{
			dotCmd,
			renderCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func dotAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		dot, err := compiler.DumpFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "dump %v", a)
		}

		fmt.Printf("%s", dot)
	}

	return nil
}

func renderAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	if len(c.Args) != 2 {
		return errors.New("usage: mirl render <file.yaml> <out.svg|out.png>")
	}

	name, out := c.Args[0], c.Args[1]

	text, err := os.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "read %v", name)
	}

	pkg, err := mirfile.Decode(ctx, text)
	if err != nil {
		return errors.Wrap(err, "decode %v", name)
	}

	for _, fn := range pkg.Funcs {
		var dot bytes.Buffer

		err = graphviz.WriteFunc(ctx, &dot, fn, pkg)
		if err != nil {
			return errors.Wrap(err, "write dot: func %v", fn.Name)
		}

		var img []byte

		switch ext := filepath.Ext(out); ext {
		case ".svg":
			img, err = render.SVG(ctx, dot.Bytes())
		case ".png":
			img, err = render.PNG(ctx, dot.Bytes())
		default:
			return errors.New("unsupported output format: %v", ext)
		}
		if err != nil {
			return errors.Wrap(err, "render func %v", fn.Name)
		}

		file := outName(out, fn.Name, len(pkg.Funcs) == 1)

		err = os.WriteFile(file, img, 0o644)
		if err != nil {
			return errors.Wrap(err, "write %v", file)
		}

		tlog.Printw("rendered", "func", fn.Name, "file", file, "size", len(img))
	}

	return nil
}

// outName keeps out as is for a single function and inserts the
// function name before the extension otherwise.
func outName(out, fn string, single bool) string {
	if single {
		return out
	}

	ext := filepath.Ext(out)

	return strings.TrimSuffix(out, ext) + "_" + fn + ext
}
