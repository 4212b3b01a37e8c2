package commands

import (
	"VoltVault/internal/cli/api"
	"VoltVault/internal/cli/auth"
	"VoltVault/internal/config"
	"context"
	"fmt"
	"net/http"
	"strings"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show server reachability and session state" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	base := strings.TrimRight(cfg.ServerURL, "/")

	// health-проба без аутентификации
	resp, _, err := api.GetJSON(base+"/", "")
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	fmt.Fprintf(Out, "Server: %s (status %d)\n", base, resp.StatusCode)

	token, err := auth.LoadToken()
	if err != nil {
		fmt.Fprintln(Out, "Session: not logged in")
		return nil
	}

	// проверяем токен реальным защищённым запросом
	resp, _, err = api.GetJSON(base+"/secrets", token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		handle, _ := auth.LoadLastHandle()
		if handle != "" {
			fmt.Fprintf(Out, "Session: active (%s)\n", handle)
		} else {
			fmt.Fprintln(Out, "Session: active")
		}
	case http.StatusForbidden:
		fmt.Fprintln(Out, "Session: expired, log in again")
	default:
		fmt.Fprintf(Out, "Session: rejected (status %d)\n", resp.StatusCode)
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
