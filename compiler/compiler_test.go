package compiler

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
)

func TestSmoke(t *testing.T) {
	ctx := context.Background()

	dot, err := DumpFile(ctx, filepath.Join("testdata", "max.yaml"))
	if err != nil {
		t.Fatalf("dump file: %v", err)
	}

	for _, want := range []string{
		"digraph Mir_0 {",
		"fn main::max(arg0: i64, arg1: i64) -&gt; i64",
		`let mut var0: i64; // m<br align="left"/>`,
		`bb0 [shape="none"`,
		`bb0 -> bb1 [label="true"];`,
		`bb0 -> bb2 [label="false"];`,
		`bb1 -> bb3 [label=""];`,
	} {
		if !bytes.Contains(dot, []byte(want)) {
			t.Errorf("output missing %q", want)
		}
	}

	t.Logf("result:\n%s", dot)
}

func TestDumpBadInput(t *testing.T) {
	ctx := context.Background()

	_, err := Dump(ctx, "bad", []byte("funcs: ["))
	if err == nil {
		t.Errorf("expected decode error")
	}

	_, err = DumpFile(ctx, filepath.Join("testdata", "missing.yaml"))
	if err == nil {
		t.Errorf("expected read error")
	}
}
