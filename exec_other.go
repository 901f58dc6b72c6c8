//go:build !unix

package main

import (
	"os"
	"os/exec"
)

// There is no exec on this platform. Run the compiler as a child instead and
// exit with its status, so that callers only ever see the compiler's exit code.
func execCommand(env env, cmd *command) error {
	execCmd := newExecCmd(env, cmd)
	execCmd.Stdin = os.Stdin
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = env.stderr()
	err := execCmd.Run()
	if exitCode, ok := getExitCode(err); ok {
		os.Exit(exitCode)
	}
	return err
}

func newExecCmd(env env, cmd *command) *exec.Cmd {
	execCmd := exec.Command(cmd.path, cmd.args...)
	execCmd.Env = env.environ()
	execCmd.Dir = env.getwd()
	return execCmd
}
