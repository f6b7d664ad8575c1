package functions

import (
	"errors"
	"fmt"
	"os"

	"github.com/gravitl/netmaker/logger"
	"github.com/ocserv-admin/ocservctl/models"
	"golang.org/x/term"
)

// Login - signs in and stores the session token
func Login(username, password, captcha string) error {
	if username == "" {
		return errors.New("username is required")
	}
	if password == "" {
		fmt.Printf("Continuing with user, %s.\nPlease input password:\n", username)
		pass, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil || string(pass) == "" {
			return errors.New("no password provided")
		}
		password = string(pass)
	}
	c := NewClient()
	resp, err := c.Admin.Login(models.AdminLogin{Username: username, Password: password, Token: captcha})
	if err != nil {
		return err
	}
	if resp.Token == "" {
		if recovered(c) {
			return errors.New("login rejected")
		}
		return errors.New("no token in login response")
	}
	if err := Tokens.SetToken(resp.Token, resp.User); err != nil {
		return fmt.Errorf("could not save token %w", err)
	}
	logger.Log(0, "logged in as", resp.User)
	return nil
}

// Logout - ends the session on the server and forgets the token
func Logout() error {
	c := NewClient()
	err := c.Admin.Logout()
	if rerr := Tokens.RemoveToken(); rerr != nil {
		logger.Log(0, "failed to remove token", rerr.Error())
	}
	return err
}

// Bootstrap - prints the bootstrap config
func Bootstrap() error {
	c := NewClient()
	cfg, err := c.Admin.Config()
	if err != nil {
		return err
	}
	PrettyPrint(cfg)
	return nil
}

// CreateConfig - creates the admin configuration from file
func CreateConfig(file string) error {
	data, err := ReadPayload[map[string]any](file)
	if err != nil {
		return err
	}
	c := NewClient()
	cfg, err := c.Admin.CreateConfigs(data)
	if err != nil || recovered(c) {
		return err
	}
	PrettyPrint(cfg)
	return nil
}

// GetConfiguration - prints the admin configuration
func GetConfiguration() error {
	c := NewClient()
	cfg, err := c.Admin.GetConfiguration()
	if err != nil || recovered(c) {
		return err
	}
	PrettyPrint(cfg)
	return nil
}

// SetConfiguration - patches the admin configuration with the fields in file
func SetConfiguration(file string) error {
	data, err := ReadPayload[map[string]any](file)
	if err != nil {
		return err
	}
	c := NewClient()
	if err := c.Admin.PatchConfiguration(data); err != nil || recovered(c) {
		return err
	}
	logger.Log(0, "configuration updated")
	return nil
}

// Dashboard - prints the dashboard summary
func Dashboard() error {
	c := NewClient()
	dash, err := c.Admin.Dashboard()
	if err != nil || recovered(c) {
		return err
	}
	PrettyPrint(dash)
	return nil
}
