package cli

import (
	"context"
	"log"
	"os"
)

func (a *App) Add(ctx context.Context) error {

	title, err := GetSimpleText(a.reader, "Enter task title", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	task, err := a.client.CreateTask(ctx, title)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Task created: %s", task.ID)
	return nil
}
