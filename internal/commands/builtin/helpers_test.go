package builtin

import (
	"kvshell/internal/commands"
	"kvshell/internal/store"
	"kvshell/pkg/kvtypes"
)

func newTestEnv() *commands.Env {
	return &commands.Env{Store: store.New(), Registry: commands.GlobalRegistry}
}

func run(env *commands.Env, line string) kvtypes.Response {
	return commands.GlobalRegistry.Dispatch(env, line)
}
