// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package scratch manages a stack of scratch directories used to scope file
// staging for external tools and AWS operations. Nested scopes push under the
// current top so a scope's files live beneath its parent's.
package scratch

import (
	"fmt"
	"os"

	"github.com/awsctl/awsctl/internal/log"
)

// Stack is a stack of scratch directory paths, top of stack being the most
// recently pushed. The zero value is ready for use. It assumes a single
// logical call chain; it is not safe for concurrent use.
type Stack struct {
	dirs []string
}

// Default is the process-wide stack used by the package-level functions.
var Default = &Stack{}

// Root resolves the directory new scratch directories are created under: the
// current top of the stack, or the OS temp root when the stack is empty.
// AWSCTL_TMP_DIR overrides the temp root.
func (s *Stack) Root() string {
	if top := s.Top(); top != "" {
		return top
	}
	if t, ok := os.LookupEnv("AWSCTL_TMP_DIR"); ok && t != "" {
		return t
	}
	return os.TempDir()
}

// Push creates a uniquely-named directory with the given prefix under Root
// and pushes its path. Returns the created path.
func (s *Stack) Push(prefix string) (string, error) {
	if prefix == "" {
		prefix = "scratch"
	}
	dir, err := os.MkdirTemp(s.Root(), prefix+"-*")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}
	s.dirs = append(s.dirs, dir)
	log.Debugf("scratch push: dir=%s depth=%d", dir, len(s.dirs))
	return dir, nil
}

// Pop removes up to n entries from the top of the stack, clamped to the
// current depth. The directories themselves are not deleted; directory
// cleanup belongs to the caller. Use WithDir for a scope that cleans up
// after itself.
func (s *Stack) Pop(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(s.dirs) {
		n = len(s.dirs)
	}
	s.dirs = s.dirs[:len(s.dirs)-n]
	log.Debugf("scratch pop: n=%d depth=%d", n, len(s.dirs))
}

// Top returns the current top entry, or "" when the stack is empty.
func (s *Stack) Top() string {
	if len(s.dirs) == 0 {
		return ""
	}
	return s.dirs[len(s.dirs)-1]
}

// Depth returns the current stack depth.
func (s *Stack) Depth() int {
	return len(s.dirs)
}

// WithDir runs fn with a freshly pushed scratch directory. The entry is
// popped and the directory removed on every path, including when fn fails,
// so the stack depth is error-path safe.
func (s *Stack) WithDir(prefix string, fn func(dir string) error) error {
	dir, err := s.Push(prefix)
	if err != nil {
		return err
	}
	defer func() {
		s.Pop(1)
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			log.Warnf("failed to remove scratch directory %s: %v", dir, rmErr)
		}
	}()

	return fn(dir)
}

// Push creates and pushes a scratch directory on the Default stack.
func Push(prefix string) (string, error) {
	return Default.Push(prefix)
}

// Pop removes up to n entries from the Default stack.
func Pop(n int) {
	Default.Pop(n)
}

// Top returns the Default stack's top entry, or "" when empty.
func Top() string {
	return Default.Top()
}

// WithDir runs fn inside a scoped scratch directory on the Default stack.
func WithDir(prefix string, fn func(dir string) error) error {
	return Default.WithDir(prefix, fn)
}
