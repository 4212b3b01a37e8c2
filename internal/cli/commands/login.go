package commands

import (
	"VoltVault/internal/cli/api"
	"VoltVault/internal/cli/auth"
	"VoltVault/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the session token" }
func (loginCmd) Usage() string       { return "login <handle> <secret>" }

func (loginCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/sessions"
	resp, body, err := api.PostJSON(endpoint, credentials{Handle: args[0], Secret: args[1]}, "")
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusBadRequest {
		return errors.New("invalid handle or secret")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var session struct {
		Token  string `json:"token"`
		Handle string `json:"handle"`
	}
	if err := json.Unmarshal(body, &session); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if session.Token == "" {
		return errors.New("no token in response")
	}
	if err := auth.SaveToken(session.Token); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	if err := auth.SaveLastHandle(session.Handle); err != nil {
		return fmt.Errorf("saving handle: %w", err)
	}
	fmt.Fprintln(Out, "Logged in as", session.Handle)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
