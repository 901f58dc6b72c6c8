//go:build unix && !libc_exec

package main

import (
	"golang.org/x/sys/unix"
)

func execCommand(env env, cmd *command) error {
	return unix.Exec(cmd.path, cmd.argv(), env.environ())
}
