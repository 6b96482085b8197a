package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
)

func (a *App) List(ctx context.Context) error {

	tasks, err := a.client.ListTasks(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tDone\tTitle")
	for i, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(w, "%d\t%s\t[%s]\t%s\n", i+1, t.ID, mark, t.Title)
	}
	return w.Flush()
}
