// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/db47h/pulsenet/internal/config"
)

const example2 = `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output
`

func writeDesc(t *testing.T, desc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "net.txt")
	require.NoError(t, os.WriteFile(path, []byte(desc), 0o644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)
	var out, errb bytes.Buffer
	cmd := NewRootCommand(cfg)
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errb.String(), err
}

func TestCommandPresence(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)
	cmd := NewRootCommand(cfg)
	assert.Equal(t, "pulsenet", cmd.Use)
	for _, name := range []string{"count", "first-low", "trace", "dot", "gen"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "command %s should exist", name)
		assert.Equal(t, name, sub.Name())
	}
	f := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, f)
	assert.Equal(t, "text", f.DefValue)
}

func TestCount(t *testing.T) {
	path := writeDesc(t, example2)

	out, _, err := execute(t, "", "count", path)
	require.NoError(t, err)
	assert.Contains(t, out, "product: 11687500\n")

	out, _, err = execute(t, "", "count", "--format", "json", "-n", "1000", path)
	require.NoError(t, err)
	var res CountResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, CountResult{Presses: 1000, Low: 4250, High: 2750, Product: 11687500}, res)
}

func TestCount_stdin(t *testing.T) {
	out, _, err := execute(t, example2, "count", "-n", "1", "--format", "yaml", "-")
	require.NoError(t, err)
	var res CountResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, CountResult{Presses: 1, Low: 4, High: 4, Product: 16}, res)
}

func TestFirstLow(t *testing.T) {
	gen, _, err := execute(t, "", "gen", "3", "5", "7")
	require.NoError(t, err)

	td := []struct {
		method  string
		presses int
	}{
		{MethodCycles, 7},
		{MethodSimulate, 105},
	}
	for _, d := range td {
		t.Run(d.method, func(t *testing.T) {
			out, _, err := execute(t, gen, "first-low", "--method", d.method, "--format", "yaml", "-")
			require.NoError(t, err)
			var res FirstLowResult
			require.NoError(t, yaml.Unmarshal([]byte(out), &res))
			assert.Equal(t, "rx", res.Terminal)
			assert.Equal(t, d.method, res.Method)
			assert.EqualValues(t, 105, res.Epoch)
			assert.Equal(t, d.presses, res.Presses)
		})
	}

	out, _, err := execute(t, gen, "first-low", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "rx: 105\n"), "got %q", out)
}

func TestFirstLow_terminal(t *testing.T) {
	out, _, err := execute(t, example2, "first-low", "-m", "simulate", "-t", "output", "-")
	require.NoError(t, err)
	assert.Equal(t, "output: 1\n", out)
}

func TestTrace(t *testing.T) {
	out, _, err := execute(t, example2, "trace", "-")
	require.NoError(t, err)
	assert.Equal(t, `# press 1
button -low-> broadcaster
broadcaster -low-> a
a -high-> inv
a -high-> con
inv -low-> b
con -high-> output
b -high-> con
con -low-> output
`, out)

	out, _, err = execute(t, example2, "trace", "-n", "2", "--format", "json", "-")
	require.NoError(t, err)
	var res TraceResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Presses, 2)
	for i, p := range res.Presses {
		assert.Equal(t, i+1, p.Epoch)
		assert.EqualValues(t, len(p.Pulses), p.Tally.Total())
	}
}

func TestDot(t *testing.T) {
	out, _, err := execute(t, "broadcaster -> a\n%a -> b", "dot", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "\t\"a\" [shape=diamond];\n")
	assert.Contains(t, out, "\t\"broadcaster\" [shape=box];\n")
	assert.Contains(t, out, "\t\"b\" [shape=doublecircle];\n")
	assert.Contains(t, out, "\t\"a\" -> \"b\" [label=0];\n")
}

func TestLogging(t *testing.T) {
	_, stderr, err := execute(t, example2, "count", "-n", "2", "--log-level", "debug", "--log-json", "-")
	require.NoError(t, err)
	require.NotEmpty(t, stderr)
	for _, l := range strings.Split(strings.TrimSpace(stderr), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(l), &m), "line %q", l)
		assert.Equal(t, "pulsenet.network", m["@module"])
	}
}

func TestExitCodes(t *testing.T) {
	td := []struct {
		name  string
		stdin string
		args  []string
		code  int
	}{
		{"ok", example2, []string{"count", "-"}, ExitSuccess},
		{"bad_format", example2, []string{"count", "--format", "xml", "-"}, ExitCommandError},
		{"bad_log_level", example2, []string{"count", "--log-level", "loud", "-"}, ExitCommandError},
		{"missing_file", "", []string{"count", filepath.Join(t.TempDir(), "nope")}, ExitCommandError},
		{"syntax", "broadcaster a", []string{"count", "-"}, ExitCommandError},
		{"bad_method", example2, []string{"first-low", "-m", "guess", "-"}, ExitCommandError},
		{"bad_period", "", []string{"gen", "4"}, ExitCommandError},
		{"not_a_number", "", []string{"gen", "x"}, ExitCommandError},
		{"quiescence", "broadcaster -> loop\nloop -> loop", []string{"count", "--max-steps", "100", "-"}, ExitFailure},
		{"no_conjunction", "broadcaster -> a\n%a -> rx", []string{"first-low", "-"}, ExitFailure},
		{"not_reached", "broadcaster -> a\n%a -> rx", []string{"first-low", "-m", "simulate", "--max-presses", "1", "-"}, ExitFailure},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, _, err := execute(t, d.stdin, d.args...)
			assert.Equal(t, d.code, GetExitCode(err), "error: %v", err)
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))
	err := WrapExitError(ExitCommandError, "bad input", errors.New("boom"))
	assert.Equal(t, "bad input: boom", err.Error())
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
