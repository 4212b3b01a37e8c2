package commands

import (
	"VoltVault/internal/cli/api"
	"VoltVault/internal/config"
	"context"
	"fmt"
	"net/http"
	"strings"
)

// credentials — тело register и login.
type credentials struct {
	Handle string `json:"handle"`
	Secret string `json:"secret"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create a new account" }
func (registerCmd) Usage() string       { return "register <handle> <secret>" }

func (registerCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/accounts"
	resp, body, err := api.PostJSON(endpoint, credentials{Handle: args[0], Secret: args[1]}, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		if msg := api.ErrorMessage(body); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	fmt.Fprintln(Out, "Account created. Now run: login", args[0], "<secret>")
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
