// Package pdftext converts roll-call vote documents into plain text.
// The conversion itself is delegated to an external program; nothing
// in the ecosystem the rest of this codebase uses handles PDFs.
package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

type Extractor interface {
	ExtractText(ctx context.Context, doc []byte) (string, error)
}

// Command extracts text by piping the document through an external
// converter, `pdftotext` by default.
type Command struct {
	Name string
	Args []string
}

func NewCommand() Command {
	return Command{Name: "pdftotext", Args: []string{"-layout"}}
}

func (c Command) ExtractText(ctx context.Context, doc []byte) (string, error) {
	args := append(append([]string{}, c.Args...), "-", "-")
	cmd := exec.CommandContext(ctx, c.Name, args...)
	cmd.Stdin = bytes.NewReader(doc)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return "", fmt.Errorf("%s: %w: %s", c.Name, err, stderr.String())
	}
	return stdout.String(), nil
}
