package cli

import (
	"context"
	"log"
	"os"
)

func (a *App) Signup(ctx context.Context) error {

	name, err := GetSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

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

	if err := a.client.Signup(ctx, name, email, password); err != nil {
		log.Printf("Signup unsuccessfull: %s", err.Error())
		return err
	}

	log.Println("Signup successfull, you can now log in")
	return nil
}
