// This binary stands in for clang in the CLAPACK build. It executes the real
// clang with a fixed target triple and optional --sysroot/-resource-dir flags.
//
// It reads the following files next to itself (one line each):
//   - clang-for-clapack.path: path of the real clang. Required unless the
//     CLAPACK_CLANG environment variable is set, which takes precedence.
//   - clang-for-clapack.sysroot: value for --sysroot. Optional.
//   - clang-for-clapack.resource-dir: value for -resource-dir. Optional.
//
// Set CLAPACK_LAUNCHER_PRINT_CMDLINE=1 to print the final command to stderr.
//
// The target triple can be changed at build time:
//
//	go build -ldflags '-X main.TargetTriple=x86_64-linux-android21'
//
// Build with -tags libc_exec to exec through the libc instead of the
// raw syscall (needed for LD_PRELOAD based sandboxes).
package main

import (
	"log"
	"os"
)

func main() {
	env, err := newProcessEnv()
	if err != nil {
		log.SetFlags(0)
		log.SetPrefix(diagnosticPrefix + " ")
		log.Print(err)
		os.Exit(launcherFailureExitCode)
	}
	// Note: callLauncher will exec the command. Only in case of
	// an error will this os.Exit be called.
	os.Exit(callLauncher(env, newProcessCommand()))
}
