package cli

import (
	"context"
	"log"
	"os"
)

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.client.Login(ctx, email, password); err != nil {
		log.Printf("Login unsuccessfull: %s", err.Error())
		return err
	}

	a.email = email
	log.Printf("Login successfull")
	return nil
}
