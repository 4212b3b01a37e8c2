package commands

import (
	"VoltVault/internal/cli/auth"
	"VoltVault/internal/cli/service"
	"VoltVault/internal/config"
	"context"
	"fmt"
)

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Delete a record by id" }
func (deleteCmd) Usage() string       { return "delete <id>" }

func (deleteCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	token, err := auth.LoadToken()
	if err != nil {
		return service.ErrNotLoggedIn
	}
	vault := service.NewVaultRemote(cfg.ServerURL, token)
	if err := vault.Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Deleted", args[0])
	return nil
}

func init() { RegisterCmd(deleteCmd{}) }
