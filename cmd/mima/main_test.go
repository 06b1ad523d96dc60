package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/ezrec/mima/cpu"
	"github.com/ezrec/mima/translate"
)

func TestMain(m *testing.M) {
	translate.SetLanguage(language.English)
	os.Exit(m.Run())
}

func writeProgram(t *testing.T, lines ...string) (filename string) {
	filename = filepath.Join(t.TempDir(), "program.mima")
	err := os.WriteFile(filename, []byte(strings.Join(lines, "\r\n")), 0o644)
	require.NoError(t, err)
	return
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	filename := writeProgram(t, "#def x=2", "ldc max", "stv x")
	output := filepath.Join(t.TempDir(), "out.txt")

	opts := &options{
		output:  output,
		defines: []string{"MAX=7"},
	}
	err := run(opts, filename)
	assert.NoError(err)

	text, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(string(text), "MiMa Emulator")
	assert.Contains(string(text), filename)
	assert.Contains(string(text), "LDC MAX\n | accu: 7\n")
	assert.True(strings.HasSuffix(string(text), "accu: 7\nX: 7\n"))
}

func TestRunErrors(t *testing.T) {
	assert := assert.New(t)

	opts := &options{output: filepath.Join(t.TempDir(), "out.txt")}

	err := run(opts, filepath.Join(t.TempDir(), "missing.mima"))
	assert.True(errors.Is(err, os.ErrNotExist))

	err = run(opts, writeProgram(t, "LDC 1", "BOGUS"))
	var serr *cpu.ErrSyntax
	assert.True(errors.As(err, &serr))
	assert.True(errors.Is(err, cpu.ErrOpcodeInvalid))

	err = run(opts, writeProgram(t, "LDV 1"))
	assert.True(errors.Is(err, cpu.ErrAddressMissing(1)))

	text, _ := os.ReadFile(opts.output)
	assert.Contains(string(text), "ERROR: ")
}

// execute runs the root command with the given arguments.
func execute(args ...string) (output string, err error) {
	buffer := &bytes.Buffer{}

	cmd := newCommand(&options{})
	cmd.SetOut(buffer)
	cmd.SetErr(buffer)
	cmd.SetArgs(args)

	err = cmd.Execute()
	output = buffer.String()
	return
}

func TestCommand(t *testing.T) {
	assert := assert.New(t)

	output := filepath.Join(t.TempDir(), "out.txt")
	filename := writeProgram(t, "LDC TOP // top", "STV 1")

	usage, err := execute("-q", "-o", output, "-D", "TOP=$(2 * 3)", filename)
	assert.NoError(err)
	assert.Empty(usage)

	text, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.NotContains(string(text), "LDC TOP")
	assert.True(strings.HasSuffix(string(text), "accu: 6\n1: 6\n"))
}

func TestCommandArgs(t *testing.T) {
	assert := assert.New(t)

	for _, args := range [][]string{{}, {"a.mima", "b.mima"}} {
		usage, err := execute(args...)
		assert.Error(err, "%v", args)
		assert.Contains(usage, "Usage:", "%v", args)
	}

	// Run time errors do not print the usage.
	usage, err := execute("-o", filepath.Join(t.TempDir(), "out.txt"), writeProgram(t, "LDV 1"))
	assert.True(errors.Is(err, cpu.ErrAddressMissing(1)))
	assert.Empty(usage)

	usage, err = execute("--bogus")
	assert.Error(err)
	assert.Contains(usage, "Usage:")
}
