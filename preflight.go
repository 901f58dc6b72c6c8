package main

import (
	"os"
)

type preflightResult struct {
	exists     bool
	regular    bool
	executable bool
}

func (res preflightResult) ok() bool {
	return res.exists && res.regular && res.executable
}

// Relative paths are checked against the working directory, as exec would.
func checkExecutable(env env, path string) preflightResult {
	info, err := os.Stat(absPath(env, path))
	if err != nil {
		return preflightResult{}
	}
	return preflightResult{
		exists:     true,
		regular:    info.Mode().IsRegular(),
		executable: info.Mode().Perm()&0111 != 0,
	}
}

// Only reports problems. The exec itself decides whether the launch fails.
func processPreflightCheck(env env, cmd *command) {
	res := checkExecutable(env, cmd.path)
	if res.ok() {
		return
	}
	printDiagnostic(env, "path='%s' exists=%d regular=%d executable=%d",
		cmd.path, boolToInt(res.exists), boolToInt(res.regular), boolToInt(res.executable))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
