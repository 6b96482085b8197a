package cli

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/client/api"
)

func (a *App) Done(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "Enter task ID to mark as done", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	completed := true
	task, err := a.client.UpdateTask(ctx, id, api.TaskPatch{Completed: &completed})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Task completed: %s", task.Title)
	return nil
}
