package cli

import (
	"context"
	"log"
	"os"
)

func (a *App) Delete(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "Enter task ID to delete", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.client.DeleteTask(ctx, id); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Println("Task deleted successfully")
	return nil
}
