package main

func processTargetFlag(builder *commandBuilder) {
	builder.addPreUserArgs("-target", builder.cfg.targetTriple)
}

func processSysrootFlag(builder *commandBuilder) {
	if builder.cfg.sysrootPath != "" {
		builder.addPreUserArgs("--sysroot", builder.cfg.sysrootPath)
	}
}

// Needed when the compiler was copied away from its installation, as clang
// would not find its builtin headers (stddef.h etc.) otherwise.
func processResourceDirFlag(builder *commandBuilder) {
	if builder.cfg.resourceDirPath != "" {
		builder.addPreUserArgs("-resource-dir", builder.cfg.resourceDirPath)
	}
}
