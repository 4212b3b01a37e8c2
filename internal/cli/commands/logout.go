package commands

import (
	"VoltVault/internal/cli/auth"
	"VoltVault/internal/config"
	"context"
	"fmt"
)

type logoutCmd struct{}

func (logoutCmd) Name() string { return "logout" }
func (logoutCmd) Description() string {
	// токен на сервере не отзывается, стирается только локальная копия
	return "Forget the stored session token"
}
func (logoutCmd) Usage() string { return "logout" }

func (logoutCmd) Run(_ context.Context, _ *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := auth.ClearToken(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
