package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/hearthhq/hearth/sdk"
)

var taskCommand = &cli.Command{
	Name:  "task",
	Usage: "Manage your parenting to-do list",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "List tasks",
			Flags: []cli.Flag{
				cliFlagOutput,
				&cli.IntFlag{
					Name:  flagPage,
					Usage: "Return the specified page of results",
				},
				&cli.IntFlag{
					Name:  flagPerPage,
					Usage: "Return the specified number of results per page",
				},
			},
			Action: taskList,
		},
		{
			Name:  "add",
			Usage: "Add a task",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagTitle,
					Aliases:  []string{"t"},
					Usage:    "The task's title (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:    flagDescription,
					Aliases: []string{"d"},
					Usage:   "A description of the task",
				},
				&cli.IntFlag{
					Name:    flagPriority,
					Aliases: []string{"p"},
					Usage:   "The task's priority, from 1 (low) to 3 (high)",
				},
				&cli.StringFlag{
					Name:  flagDue,
					Usage: "When the task is due, in RFC3339 format",
				},
			},
			Action: taskAdd,
		},
		{
			Name:      "complete",
			Usage:     "Mark a task as done",
			ArgsUsage: "TASK_ID",
			Action:    taskComplete,
		},
		{
			Name:      "remove",
			Usage:     "Remove a task",
			ArgsUsage: "TASK_ID",
			Action:    taskRemove,
		},
	},
}

func taskIDArg(c *cli.Context) (int64, error) {
	if c.Args().Len() != 1 {
		return 0, errors.New("a single TASK_ID argument is required")
	}
	id, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
	if err != nil {
		return 0, errors.Errorf("%q is not a valid task id", c.Args().Get(0))
	}
	return id, nil
}

func taskList(c *cli.Context) error {
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	tasks, err := client.Tasks().List(
		c.Context,
		sdk.ListOptions{
			Page:    c.Int(flagPage),
			PerPage: c.Int(flagPerPage),
		},
	)
	if err != nil {
		return err
	}

	if len(tasks.Items) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.MaxColWidth = 50
		table.AddRow("ID", "TITLE", "PRIORITY", "DUE", "DONE")
		for _, task := range tasks.Items {
			due := ""
			if task.DueDate != nil {
				due = task.DueDate.Format(time.RFC3339)
				if task.IsOverdue {
					due = fmt.Sprintf("%s (overdue)", due)
				}
			}
			table.AddRow(
				task.ID,
				task.Title,
				task.PriorityLabel,
				due,
				task.Completed,
			)
		}
		fmt.Println(table)
	default:
		if err := printStructured(output, tasks); err != nil {
			return err
		}
	}
	return nil
}

func taskAdd(c *cli.Context) error {
	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	spec := sdk.TaskSpec{
		Title:       c.String(flagTitle),
		Description: c.String(flagDescription),
	}
	if c.IsSet(flagPriority) {
		priority := c.Int(flagPriority)
		spec.Priority = &priority
	}
	if c.IsSet(flagDue) {
		dueDate, err := time.Parse(time.RFC3339, c.String(flagDue))
		if err != nil {
			return errors.Errorf(
				"%q is not a valid RFC3339 due date",
				c.String(flagDue),
			)
		}
		spec.DueDate = &dueDate
	}

	task, err := client.Tasks().Create(c.Context, spec)
	if err != nil {
		return err
	}

	fmt.Printf("Added task %q with id %d.\n", task.Title, task.ID)
	return nil
}

func taskComplete(c *cli.Context) error {
	id, err := taskIDArg(c)
	if err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	task, err := client.Tasks().Complete(c.Context, id)
	if err != nil {
		return err
	}

	fmt.Printf("Task %q is done.\n", task.Title)
	return nil
}

func taskRemove(c *cli.Context) error {
	id, err := taskIDArg(c)
	if err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	if err := client.Tasks().Delete(c.Context, id); err != nil {
		return err
	}

	fmt.Printf("Removed task %d.\n", id)
	return nil
}
