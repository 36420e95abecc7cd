package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/ffsets/internal/testdata"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestTraceLevel(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for l, exp := range map[string]tracing.TraceLevel{
		"D": tracing.LevelDebug,
		"I": tracing.LevelInfo,
		"E": tracing.LevelError,
		"X": tracing.LevelError,
	} {
		if traceLevel(l) != exp {
			t.Errorf("trace level %q: expected %v", l, exp)
		}
	}
}

func run(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	global = globalFlags{}
	return out.String(), err
}

func TestSetsCommand(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	out, err := run(t, "sets", testdata.GrammarPath("worked.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<A>") || !strings.Contains(out, "Follows:") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRulesCommandJSON(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	out, err := run(t, "rules", "--format", "json", testdata.GrammarPath("worked.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"lhs": "<S>"`) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSetsCommandFails(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if _, err := run(t, "sets", testdata.GrammarPath("badlhs.txt")); err == nil {
		t.Errorf("expected terminal lhs to be rejected")
	}
	if _, err := run(t, "sets", "grammar.yaml"); err == nil {
		t.Errorf("expected unknown format to be rejected")
	}
	if _, err := run(t, "sets", "--format", "xml", testdata.GrammarPath("worked.txt")); err == nil {
		t.Errorf("expected unknown output format to be rejected")
	}
}
