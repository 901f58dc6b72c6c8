package main

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"syscall"
)

type userError struct {
	err string
}

var _ error = userError{}

func (err userError) Error() string {
	return err.err
}

func newUserErrorf(format string, v ...interface{}) userError {
	return userError{err: fmt.Sprintf(format, v...)}
}

// Returned when neither CLAPACK_CLANG nor the compiler path file yields a path.
var errMissingCompilerConfig = newUserErrorf("set %s or create %s next to this binary",
	compilerOverrideEnvVar, compilerPathSuffix)

// launchError reports a failed process replacement. It unwraps to the
// underlying OS error.
type launchError struct {
	path string
	err  error
}

var _ error = (*launchError)(nil)

func (err *launchError) Error() string {
	return fmt.Sprintf("execv failed for path='%s' (execv): %s", err.path, err.err)
}

func (err *launchError) Unwrap() error {
	return err.err
}

func newErrorwithSourceLocf(format string, v ...interface{}) error {
	return newErrorwithSourceLocfInternal(2, format, v...)
}

func wrapErrorwithSourceLocf(err error, format string, v ...interface{}) error {
	return newErrorwithSourceLocfInternal(2, "%s: %s", fmt.Sprintf(format, v...), err.Error())
}

// Based on the implementation of log.Output
func newErrorwithSourceLocfInternal(skip int, format string, v ...interface{}) error {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file = "???"
		line = 0
	}
	if lastSlash := strings.LastIndex(file, "/"); lastSlash >= 0 {
		file = file[lastSlash+1:]
	}

	return fmt.Errorf("%s:%d: %s", file, line, fmt.Sprintf(format, v...))
}

func getExitCode(err error) (exitCode int, ok bool) {
	if err == nil {
		return 0, true
	}
	var exiterr *exec.ExitError
	if errors.As(err, &exiterr) {
		if status, ok := exiterr.Sys().(syscall.WaitStatus); ok {
			return status.ExitStatus(), true
		}
		return exiterr.ExitCode(), true
	}
	return 0, false
}
