// Copyright 2019 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type env interface {
	getenv(key string) string
	environ() []string
	getwd() string
	stderr() io.Writer
	exec(cmd *command) error
}

type processEnv struct {
	wd string
}

func newProcessEnv() (env, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, wrapErrorwithSourceLocf(err, "failed to read working directory")
	}
	return &processEnv{wd: wd}, nil
}

var _ env = (*processEnv)(nil)

func (env *processEnv) getenv(key string) string {
	return os.Getenv(key)
}

func (env *processEnv) environ() []string {
	return os.Environ()
}

func (env *processEnv) getwd() string {
	return env.wd
}

func (env *processEnv) stderr() io.Writer {
	return os.Stderr
}

// Only returns on error. See exec_*.go for the platform specific part.
func (env *processEnv) exec(cmd *command) error {
	return execCommand(env, cmd)
}

type printingEnv struct {
	env
}

var _ env = (*printingEnv)(nil)

func (env *printingEnv) exec(cmd *command) error {
	printCmd(env, cmd)
	return env.env.exec(cmd)
}

func printCmd(env env, cmd *command) {
	fmt.Fprintf(env.stderr(), "cd '%s' &&", env.getwd())
	fmt.Fprintf(env.stderr(), " '%s'", absPath(env, cmd.path))
	if len(cmd.args) > 0 {
		fmt.Fprintf(env.stderr(), " '%s'", strings.Join(cmd.args, "' '"))
	}
	io.WriteString(env.stderr(), "\n")
}

// Prefixes a relative path with the working directory. The result is not
// cleaned: ".." has to be resolved by the kernel, as $PWD may contain symlinks.
func absPath(env env, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return env.getwd() + string(filepath.Separator) + path
}
