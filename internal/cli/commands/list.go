package commands

import (
	"VoltVault/internal/cli/auth"
	"VoltVault/internal/cli/service"
	"VoltVault/internal/config"
	"context"
	"fmt"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "List all vault records" }
func (listCmd) Usage() string       { return "list" }

func (listCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	token, err := auth.LoadToken()
	if err != nil {
		return service.ErrNotLoggedIn
	}
	vault := service.NewVaultRemote(cfg.ServerURL, token)
	list, err := vault.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Vault is empty")
		return nil
	}
	for _, rec := range list {
		fav := ""
		if rec.Favorite {
			fav = " *"
		}
		fmt.Fprintf(Out, "- %s  [%s] %s%s\n", rec.ID, rec.Kind, rec.Name, fav)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(listCmd{}) }
