package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kvm-appvm/kvm-appvm/internal/iostreams"
	"github.com/kvm-appvm/kvm-appvm/internal/logging"
)

func testStreams() (*iostreams.IOStreams, *bytes.Buffer, *bytes.Buffer) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	streams := iostreams.NewStream(io.NopCloser(bytes.NewReader(nil)), out, errOut)
	return streams, out, errOut
}

func TestSnippetPrintsShellFunction(t *testing.T) {
	assert := assert.New(t)
	streams, out, errOut := testStreams()

	exit := Run(context.Background(), streams, "snippet")

	assert.Equal(0, exit)
	assert.Equal(logging.ShellFunction, out.String())
	assert.Empty(errOut.String())
}

func TestWriteRejectsMissingArguments(t *testing.T) {
	assert := assert.New(t)
	streams, _, errOut := testStreams()

	exit := Run(context.Background(), streams, "write", "appvm")

	assert.Equal(1, exit)
	assert.Contains(errOut.String(), "Error:")
}

func TestCommandRequiresArguments(t *testing.T) {
	assert := assert.New(t)
	streams, _, errOut := testStreams()

	exit := Run(context.Background(), streams, "command", "appvm", "START")

	assert.Equal(1, exit)
	assert.Contains(errOut.String(), "Error:")
}

func TestUnknownSubcommandFails(t *testing.T) {
	assert := assert.New(t)
	streams, _, errOut := testStreams()

	exit := Run(context.Background(), streams, "rotate")

	assert.Equal(1, exit)
	assert.Contains(errOut.String(), "Error:")
}
