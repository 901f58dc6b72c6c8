package main

// Reserved for failures of the launcher itself, so that they can be told
// apart from errors reported by the compiler.
const launcherFailureExitCode = 127

const printCmdlineEnvVar = "CLAPACK_LAUNCHER_PRINT_CMDLINE"

func callLauncher(env env, inputCmd *command) int {
	if err := callLauncherInternal(env, inputCmd); err != nil {
		printLauncherError(env, err)
		return launcherFailureExitCode
	}
	// Note: only reached if env.exec did not replace the process,
	// e.g. in tests.
	return 0
}

func callLauncherInternal(env env, inputCmd *command) error {
	cfg, err := resolveConfig(env, inputCmd.path)
	if err != nil {
		return err
	}
	if env.getenv(printCmdlineEnvVar) != "" {
		env = &printingEnv{env}
	}
	compilerCmd := calcCompilerCommand(cfg, inputCmd)
	processPreflightCheck(env, compilerCmd)
	if err := env.exec(compilerCmd); err != nil {
		return &launchError{path: compilerCmd.path, err: err}
	}
	return nil
}

// Builds [compiler -target <triple> [--sysroot <dir>] [-resource-dir <dir>] <user args>].
func calcCompilerCommand(cfg *config, inputCmd *command) *command {
	builder := newCommandBuilder(cfg, inputCmd)
	processTargetFlag(builder)
	processSysrootFlag(builder)
	processResourceDirFlag(builder)
	return builder.build()
}

func printLauncherError(env env, err error) {
	switch err.(type) {
	case userError, *launchError:
		printDiagnostic(env, "%s", err)
	default:
		printDiagnostic(env, "internal error: %s", err)
	}
}
