package compiler

import (
	"bytes"
	"context"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/mirlang/mirl/compiler/graphviz"
	"github.com/mirlang/mirl/compiler/mirfile"
)

func DumpFile(ctx context.Context, name string) (dot []byte, err error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Dump(ctx, name, text)
}

func Dump(ctx context.Context, name string, text []byte) (dot []byte, err error) {
	pkg, err := mirfile.Decode(ctx, text)
	if err != nil {
		return nil, errors.Wrap(err, "decode mir")
	}

	if pkg.Path == "" {
		pkg.Path = name
	}

	var buf bytes.Buffer

	err = graphviz.WriteMIR(ctx, &buf, pkg, nil)
	if err != nil {
		return nil, errors.Wrap(err, "write graphviz")
	}

	return buf.Bytes(), nil
}
