package commands

import (
	"VoltVault/internal/cli/auth"
	"VoltVault/internal/cli/service"
	"VoltVault/internal/config"
	"VoltVault/internal/model"
	"context"
	"fmt"
)

type getCmd struct{}

func (getCmd) Name() string        { return "get" }
func (getCmd) Description() string { return "Show a record with its secret revealed" }
func (getCmd) Usage() string       { return "get <id>" }

func (getCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	token, err := auth.LoadToken()
	if err != nil {
		return service.ErrNotLoggedIn
	}
	vault := service.NewVaultRemote(cfg.ServerURL, token)
	rec, err := vault.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "id:        %s\n", rec.ID)
	fmt.Fprintf(Out, "kind:      %s\n", rec.Kind)
	fmt.Fprintf(Out, "name:      %s\n", rec.Name)
	if label := model.SecretKind(rec.Kind).SecondaryLabel(); label != "" {
		fmt.Fprintf(Out, "%-9s %s\n", label+":", rec.SecondaryID)
	}
	fmt.Fprintf(Out, "secret:    %s\n", rec.Secret)
	fmt.Fprintf(Out, "favorite:  %t\n", rec.Favorite)
	return nil
}

func init() { RegisterCmd(getCmd{}) }
