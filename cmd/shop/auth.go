package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shop/internal/api"
	"github.com/vovakirdan/tui-shop/internal/storage"
)

var flagEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the access token",
	Long: `Sign in to the backend. The password is read without echo and the
access token is stored in the local database.

Examples:
  shop login
  shop login --email me@example.com`,
	Run: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored access token",
	Run:   runLogout,
}

func init() {
	loginCmd.Flags().StringVar(&flagEmail, "email", "", "Account email")
}

func runLogin(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(false)
	defer closeLog()

	email := flagEmail
	if email == "" {
		fmt.Print("Email: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			fail("reading email: %v", err)
		}
		email = strings.TrimSpace(line)
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		fail("reading password: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("%v", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	res, err := newClient(cfg, logger).Login(ctx, email, string(password))
	if err != nil {
		store.Close()
		fail("%s", api.Message(err, "Login failed"))
	}
	if err := store.SaveToken(storage.LocalOwner, res.AccessToken); err != nil {
		store.Close()
		fail("%v", err)
	}

	fmt.Println("Login successful!")
}

func runLogout(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("%v", err)
	}
	defer store.Close()

	if err := store.ClearToken(storage.LocalOwner); err != nil {
		store.Close()
		fail("%v", err)
	}
	fmt.Println("Logged out.")
}
