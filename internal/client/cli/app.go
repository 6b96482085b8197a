// Package cli implements the interactive terminal client for TaskKeeper.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/client/api"
	"github.com/dmitrijs2005/taskkeeper/internal/client/config"
)

type App struct {
	config *config.Config
	client *api.Client
	email  string
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		client: api.New(c.ServerURL),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.client.IsAuthenticated()
}

func (a *App) getStatus() string {
	if a.email == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.email)
}

func (a *App) Run(ctx context.Context) {
	log.Println("Welcome to TaskKeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.email = ""
	log.Println("Logged out")
	return nil
}
