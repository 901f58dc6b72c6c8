package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"runtime"
	"strings"
)

type config struct {
	// Path of the real compiler. Never empty.
	compilerPath string
	// Value for --sysroot. Empty if not configured.
	sysrootPath string
	// Value for -resource-dir. Empty if not configured.
	resourceDirPath string
	// Value for -target.
	targetTriple string
}

// TargetTriple can be set via a linker flag.
// E.g. go build -ldflags '-X main.TargetTriple=armv7a-linux-androideabi21'.
var TargetTriple = "aarch64-linux-android21"

const compilerOverrideEnvVar = "CLAPACK_CLANG"

const (
	compilerPathSuffix = "clang-for-clapack.path"
	sysrootSuffix      = "clang-for-clapack.sysroot"
	resourceDirSuffix  = "clang-for-clapack.resource-dir"
)

// Matches PATH_MAX on linux. Lines are cut at maxPathLen-1 bytes.
const maxPathLen = 4096

// Resolves the launcher configuration from the files next to executablePath.
// The environment is only read through env.
func resolveConfig(env env, executablePath string) (*config, error) {
	triple, err := validateTargetTriple(TargetTriple)
	if err != nil {
		return nil, err
	}

	compilerPath := env.getenv(compilerOverrideEnvVar)
	if compilerPath == "" {
		compilerPath, err = readSiblingFile(env, executablePath, compilerPathSuffix)
		if err != nil || compilerPath == "" {
			return nil, errMissingCompilerConfig
		}
	}

	// The sysroot and resource dir are optional; any failure means "not set".
	sysrootPath, _ := readSiblingFile(env, executablePath, sysrootSuffix)
	resourceDirPath, _ := readSiblingFile(env, executablePath, resourceDirSuffix)

	return &config{
		compilerPath:    compilerPath,
		sysrootPath:     sysrootPath,
		resourceDirPath: resourceDirPath,
		targetTriple:    triple,
	}, nil
}

func validateTargetTriple(triple string) (string, error) {
	parts := strings.Split(triple, "-")
	if len(parts) < 3 {
		return "", newErrorwithSourceLocf("invalid target triple %q", triple)
	}
	for _, part := range parts {
		if part == "" {
			return "", newErrorwithSourceLocf("invalid target triple %q", triple)
		}
	}
	return triple, nil
}

// Returns the path of the file named suffix in the directory of executablePath.
// The directory is everything up to and including the last separator.
func siblingFilePath(env env, executablePath string, suffix string) string {
	separators := "/"
	if runtime.GOOS == "windows" {
		separators = `/\`
	}
	dir := executablePath[:strings.LastIndexAny(executablePath, separators)+1]
	return absPath(env, dir+suffix)
}

func readSiblingFile(env env, executablePath string, suffix string) (string, error) {
	return readLineFile(siblingFilePath(env, executablePath, suffix))
}

// Reads the first line of a file without its trailing newline.
// The line also ends at a NUL byte, as it can't be passed to exec.
// Other whitespace is kept. An empty file is an error, an empty line is not.
func readLineFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, maxPathLen-1)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		if errors.Is(err, io.EOF) {
			return "", wrapErrorwithSourceLocf(err, "empty file %s", path)
		}
		return "", wrapErrorwithSourceLocf(err, "failed to read %s", path)
	}
	line := buf[:n]
	if eol := bytes.IndexAny(line, "\n\x00"); eol >= 0 {
		line = line[:eol]
	}
	return string(line), nil
}
