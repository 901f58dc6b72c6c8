package main

import (
	"os"
)

type command struct {
	path string
	args []string
}

func newProcessCommand() *command {
	return &command{
		path: os.Args[0],
		args: os.Args[1:],
	}
}

// Returns the full argument vector, including argv[0].
func (cmd *command) argv() []string {
	return append([]string{cmd.path}, cmd.args...)
}

func newCommandBuilder(cfg *config, cmd *command) *commandBuilder {
	return &commandBuilder{
		path: cfg.compilerPath,
		args: createBuilderArgs( /*fromUser=*/ true, cmd.args),
		cfg:  cfg,
	}
}

type commandBuilder struct {
	path string
	args []builderArg
	cfg  *config
}

type builderArg struct {
	value    string
	fromUser bool
}

func createBuilderArgs(fromUser bool, args []string) []builderArg {
	builderArgs := make([]builderArg, len(args))
	for i, arg := range args {
		builderArgs[i] = builderArg{value: arg, fromUser: fromUser}
	}
	return builderArgs
}

// Inserts args after all previously added pre user args and before the
// first user arg.
func (builder *commandBuilder) addPreUserArgs(args ...string) {
	index := 0
	for _, arg := range builder.args {
		if arg.fromUser {
			break
		}
		index++
	}
	builder.args = append(builder.args[:index], append(createBuilderArgs( /*fromUser=*/ false, args), builder.args[index:]...)...)
}

func (builder *commandBuilder) build() *command {
	cmdArgs := make([]string, len(builder.args))
	for i, builderArg := range builder.args {
		cmdArgs[i] = builderArg.value
	}
	return &command{
		path: builder.path,
		args: cmdArgs,
	}
}
