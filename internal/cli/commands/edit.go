package commands

import (
	"VoltVault/internal/cli/auth"
	"VoltVault/internal/cli/service"
	"VoltVault/internal/config"
	"context"
	"fmt"
	"strconv"
)

type editCmd struct{}

func (editCmd) Name() string { return "edit" }
func (editCmd) Description() string {
	return "Replace one field (kind|name|secondary|secret|favorite)"
}
func (editCmd) Usage() string { return "edit <id> <field> <value>" }

func (editCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	id, field, value := args[0], args[1], args[2]

	var in service.EditInput
	switch field {
	case "kind":
		in.Kind = &value
	case "name":
		in.Name = &value
	case "secondary":
		in.SecondaryID = &value
	case "secret":
		in.Secret = &value
	case "favorite":
		fav, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("favorite must be true or false: %w", err)
		}
		in.Favorite = &fav
	default:
		return ErrUsage
	}

	token, err := auth.LoadToken()
	if err != nil {
		return service.ErrNotLoggedIn
	}
	vault := service.NewVaultRemote(cfg.ServerURL, token)
	updated, err := vault.Edit(id, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Updated %s  [%s] %s\n", updated.ID, updated.Kind, updated.Name)
	return nil
}

func init() { RegisterCmd(editCmd{}) }
