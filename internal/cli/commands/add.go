package commands

import (
	"VoltVault/internal/cli/auth"
	"VoltVault/internal/cli/model"
	"VoltVault/internal/cli/service"
	"VoltVault/internal/config"
	"context"
	"fmt"
)

type addCmd struct{}

func (addCmd) Name() string { return "add" }
func (addCmd) Description() string {
	return "Add a record (kind: login|card|note)"
}
func (addCmd) Usage() string { return "add <kind> <name> [secondary] [secret]" }

func (addCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 4 {
		return ErrUsage
	}
	token, err := auth.LoadToken()
	if err != nil {
		return service.ErrNotLoggedIn
	}

	rec := model.LogicalRecord{Kind: args[0], Name: args[1]}
	if len(args) > 2 {
		rec.SecondaryID = args[2]
	}
	if len(args) > 3 {
		rec.Secret = args[3]
	}

	vault := service.NewVaultRemote(cfg.ServerURL, token)
	created, err := vault.Add(rec)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created %s  [%s] %s\n", created.ID, created.Kind, created.Name)
	return nil
}

func init() { RegisterCmd(addCmd{}) }
