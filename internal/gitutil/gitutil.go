// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package gitutil wraps the git CLI for clone and push. Credentials come
// from provider-named environment variables (GITHUB_TOKEN, GITLAB_TOKEN,
// BITBUCKET_TOKEN) fed to git through a one-shot askpass helper; as a last
// resort the token is read from the terminal without echo.
package gitutil

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/awsctl/awsctl/internal/log"
)

// tokenEnvVars maps a URL host fragment to the env var holding its token.
var tokenEnvVars = map[string]string{
	"github.com":    "GITHUB_TOKEN",
	"gitlab.com":    "GITLAB_TOKEN",
	"bitbucket.org": "BITBUCKET_TOKEN",
}

// Clone clones url into dir. When dir already holds a clone with a matching
// origin the call is a no-op. Fails fast on any git error.
func Clone(ctx context.Context, url, dir string) error {
	if origin, err := originURL(ctx, dir); err == nil {
		if origin == url {
			log.Debugf("already cloned: dir=%s", dir)
			return nil
		}
		return fmt.Errorf("%s already holds a clone of %s", dir, origin)
	}

	return run(ctx, "", url, "clone", url, dir)
}

// Push pushes branch to remote from the repository at dir.
func Push(ctx context.Context, dir, remote, branch string) error {
	url, err := remoteURL(ctx, dir, remote)
	if err != nil {
		return err
	}
	return run(ctx, dir, url, "push", remote, branch)
}

// Token resolves the credential for a repository URL: the provider-named
// env var when set, otherwise a no-echo prompt on the controlling terminal.
func Token(url string) (string, error) {
	for host, envVar := range tokenEnvVars {
		if !strings.Contains(url, host) {
			continue
		}
		if tok := os.Getenv(envVar); tok != "" {
			return tok, nil
		}
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", nil
	}

	fmt.Fprintf(os.Stderr, "Token for %s: ", url)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return string(b), nil
}

// run invokes git with an askpass helper supplying the token for url. The
// failing command's exit status is forwarded verbatim inside the returned
// error.
func run(ctx context.Context, dir, url string, args ...string) error {
	token, err := Token(url)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	if token != "" {
		askpass, cleanup, err := writeAskpass(token)
		if err != nil {
			return err
		}
		defer cleanup()
		cmd.Env = append(cmd.Env, "GIT_ASKPASS="+askpass)
	}

	log.Debugf("git invoked: args=%v dir=%s", args, dir)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s failed: %w", args[0], err)
	}
	return nil
}

// originURL returns the origin remote URL of the repository at dir.
func originURL(ctx context.Context, dir string) (string, error) {
	return remoteURL(ctx, dir, "origin")
}

func remoteURL(ctx context.Context, dir, remote string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "remote", "get-url", remote)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to resolve remote %s in %s: %w", remote, dir, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// writeAskpass writes a throwaway helper script that echoes the token once.
func writeAskpass(token string) (path string, cleanup func(), err error) {
	dir, err := os.MkdirTemp("", "askpass-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create askpass dir: %w", err)
	}

	path = filepath.Join(dir, "askpass.sh")
	script := "#!/bin/sh\necho '" + strings.ReplaceAll(token, "'", `'\''`) + "'\n"
	if err := os.WriteFile(path, []byte(script), 0o700); err != nil {
		os.RemoveAll(dir)
		return "", nil, fmt.Errorf("failed to write askpass helper: %w", err)
	}

	return path, func() { os.RemoveAll(dir) }, nil
}
