package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

const mainC = "main.c"
const launcherName = "clang-for-clapack-launcher"
const ndkClang = "/ndk/clang"
const defaultTriple = "aarch64-linux-android21"

type testContext struct {
	t            *testing.T
	tempDir      string
	env          []string
	stderrBuffer bytes.Buffer
	// Working directory. Defaults to tempDir.
	wd string
	// Commands passed to exec, in order.
	execCmds []*command
	// Returned by exec if set.
	execErr error
}

func withTestContext(t *testing.T, work func(ctx *testContext)) {
	t.Parallel()
	ctx := testContext{
		t:       t,
		tempDir: t.TempDir(),
		env:     nil,
	}
	work(&ctx)
}

var _ env = (*testContext)(nil)

func (ctx *testContext) getenv(key string) string {
	for i := len(ctx.env) - 1; i >= 0; i-- {
		entry := ctx.env[i]
		if strings.HasPrefix(entry, key+"=") {
			return entry[len(key)+1:]
		}
	}
	return ""
}

func (ctx *testContext) environ() []string {
	return ctx.env
}

func (ctx *testContext) getwd() string {
	if ctx.wd != "" {
		return ctx.wd
	}
	return ctx.tempDir
}

func (ctx *testContext) stderr() io.Writer {
	return &ctx.stderrBuffer
}

func (ctx *testContext) exec(cmd *command) error {
	ctx.execCmds = append(ctx.execCmds, cmd)
	return ctx.execErr
}

func (ctx *testContext) stderrString() string {
	return ctx.stderrBuffer.String()
}

// Returns the single command that was passed to exec.
func (ctx *testContext) mustExecCmd() *command {
	if len(ctx.execCmds) != 1 {
		ctx.t.Fatalf("expected exactly one exec. Got: %d", len(ctx.execCmds))
	}
	return ctx.execCmds[0]
}

// Returns the input command of a launcher located in the temp dir.
func (ctx *testContext) newCommand(args ...string) *command {
	return &command{
		path: filepath.Join(ctx.tempDir, launcherName),
		args: args,
	}
}

func (ctx *testContext) writeFile(fullFileName string, fileContent string) {
	ctx.writeFileWithMode(fullFileName, fileContent, 0777)
}

func (ctx *testContext) writeFileWithMode(fullFileName string, fileContent string, mode os.FileMode) {
	if !filepath.IsAbs(fullFileName) {
		fullFileName = filepath.Join(ctx.tempDir, fullFileName)
	}
	if err := os.MkdirAll(filepath.Dir(fullFileName), 0777); err != nil {
		ctx.t.Fatal(err)
	}
	if err := os.WriteFile(fullFileName, []byte(fileContent), mode); err != nil {
		ctx.t.Fatal(err)
	}
	// WriteFile only applies mode on creation and is subject to the umask.
	if err := os.Chmod(fullFileName, mode); err != nil {
		ctx.t.Fatal(err)
	}
}

func (ctx *testContext) symlink(oldname string, newname string) {
	if err := os.MkdirAll(filepath.Dir(newname), 0777); err != nil {
		ctx.t.Fatal(err)
	}
	if err := os.Symlink(oldname, newname); err != nil {
		ctx.t.Fatal(err)
	}
}

// Sets the working directory to the symlink <tempDir>/link, which points to
// <tempDir>/real/sub. ".." in relative paths then refers to <tempDir>/real.
func (ctx *testContext) useSymlinkedWd() {
	target := filepath.Join(ctx.tempDir, "real", "sub")
	if err := os.MkdirAll(target, 0777); err != nil {
		ctx.t.Fatal(err)
	}
	ctx.wd = filepath.Join(ctx.tempDir, "link")
	ctx.symlink(target, ctx.wd)
}

// Writes an executable compiler into the temp dir and returns its path.
func (ctx *testContext) writeCompiler(name string) string {
	path := filepath.Join(ctx.tempDir, name)
	ctx.writeFile(path, "#!/bin/sh\n")
	return path
}

func verifyPath(cmd *command, expectedRegex string) error {
	compiledRegex := regexp.MustCompile(matchFullString(expectedRegex))
	if !compiledRegex.MatchString(cmd.path) {
		return fmt.Errorf("path does not match %s. Actual %s", expectedRegex, cmd.path)
	}
	return nil
}

func verifyArgCount(cmd *command, expectedCount int, expectedRegex string) error {
	compiledRegex := regexp.MustCompile(matchFullString(expectedRegex))
	count := 0
	for _, arg := range cmd.args {
		if compiledRegex.MatchString(arg) {
			count++
		}
	}
	if count != expectedCount {
		return fmt.Errorf("expected %d matches for arg %s. All args: %s",
			expectedCount, expectedRegex, cmd.args)
	}
	return nil
}

func verifyArgOrder(cmd *command, expectedRegexes ...string) error {
	compiledRegexes := []*regexp.Regexp{}
	for _, regex := range expectedRegexes {
		compiledRegexes = append(compiledRegexes, regexp.MustCompile(matchFullString(regex)))
	}
	expectedArgIndex := 0
	for _, arg := range cmd.args {
		if expectedArgIndex == len(compiledRegexes) {
			break
		} else if compiledRegexes[expectedArgIndex].MatchString(arg) {
			expectedArgIndex++
		}
	}
	if expectedArgIndex != len(expectedRegexes) {
		return fmt.Errorf("expected args %s in order. All args: %s",
			expectedRegexes, cmd.args)
	}
	return nil
}

func matchFullString(regex string) string {
	return "^" + regex + "$"
}
