package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestStdPrinterRouting(t *testing.T) {
	var out, errOut bytes.Buffer
	p := StdPrinter{Out: &out, Err: &errOut}

	p.Plain("1.2.3-45-abcdef1")
	p.Info("checked out %s", "main")
	p.Warn("push failed")
	p.Error("bad version file")

	if got := out.String(); got != "1.2.3-45-abcdef1\n" {
		t.Fatalf("stdout must stay machine-readable, got %q", got)
	}
	es := errOut.String()
	for _, want := range []string{"[info]", "checked out main", "[warn]", "push failed", "[error]", "bad version file"} {
		if !strings.Contains(es, want) {
			t.Fatalf("stderr missing %q: %q", want, es)
		}
	}
}

func TestStdPrinterNilWritersAreSafe(t *testing.T) {
	p := StdPrinter{}
	p.Plain("x")
	p.Info("x")
	p.Warn("x")
	p.Error("x")
}

func TestNoopPrinter(t *testing.T) {
	var p Printer = NoopPrinter{}
	p.Plain("discarded")
}
