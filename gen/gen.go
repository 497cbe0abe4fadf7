// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package gen runs the external commands attached to a site build.
package gen // import "akhil.cc/sitegen/gen"

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	sq "github.com/kballard/go-shellquote"
)

// Command holds the cancellation context, working directory and output
// streams for a command's executed process.
type Command struct {
	Ctx    context.Context
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// Run splits line according to the Bourne shell's word-splitting rules,
// executes the resulting process and waits for it to finish.
// It returns any execution errors encountered during the process.
func (c *Command) Run(line string) error {
	words, err := sq.Split(line)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return fmt.Errorf("No valid commands: '%q'", line)
	}
	var cmd *exec.Cmd
	if c.Ctx == nil {
		cmd = exec.Command(words[0], words[1:]...)
	} else {
		cmd = exec.CommandContext(c.Ctx, words[0], words[1:]...)
	}
	cmd.Dir = c.Dir
	if c.Stdout == nil && c.Stderr == nil {
		return fmt.Errorf("no output writer for command %q", line)
	}
	if c.Stdout != nil {
		cmd.Stdout = c.Stdout
	}
	if c.Stderr != nil {
		cmd.Stderr = c.Stderr
	}
	return cmd.Run()
}
