// Package render lays out DOT text with graphviz and rasterizes it.
package render

import (
	"bytes"
	"context"

	"github.com/goccy/go-graphviz"
	"tlog.app/go/errors"
)

// SVG lays out one DOT graph and renders it to SVG.
func SVG(ctx context.Context, dot []byte) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// PNG lays out one DOT graph and renders it to PNG.
func PNG(ctx context.Context, dot []byte) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot []byte, f graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "init graphviz")
	}

	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, errors.Wrap(err, "parse dot")
	}

	defer g.Close()

	var buf bytes.Buffer

	err = gv.Render(ctx, g, f, &buf)
	if err != nil {
		return nil, errors.Wrap(err, "render")
	}

	return buf.Bytes(), nil
}
