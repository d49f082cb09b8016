package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosuri/uitable"
	"github.com/urfave/cli/v2"
)

var dashboardCommand = &cli.Command{
	Name:  "dashboard",
	Usage: "Show your engagement summary",
	Flags: []cli.Flag{
		cliFlagOutput,
	},
	Action: dashboard,
}

func dashboard(c *cli.Context) error {
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, sess, err := getClient(c)
	if err != nil {
		return err
	}

	stats, err := client.Users().Engagement(c.Context)
	if err != nil {
		return err
	}

	if strings.ToLower(output) != "table" {
		return printStructured(output, stats)
	}

	snapshot := sess.Snapshot()
	if snapshot.User != nil {
		fmt.Printf("Welcome back, %s!\n\n", describeUser(*snapshot.User))
	}

	table := uitable.New()
	table.AddRow("COMMUNITIES", "POSTS", "MEMBERS", "ENGAGEMENT")
	table.AddRow(
		stats.TotalCommunities,
		stats.TotalPosts,
		stats.TotalUsers,
		fmt.Sprintf("%.1f", stats.UserEngagement),
	)
	fmt.Println(table)

	if len(stats.PendingTasks) > 0 {
		fmt.Println("\nPending tasks:")
		taskTable := uitable.New()
		taskTable.MaxColWidth = 50
		taskTable.AddRow("ID", "TITLE", "DUE")
		for _, task := range stats.PendingTasks {
			due := ""
			if task.DueDate != nil {
				due = task.DueDate.Format(time.RFC3339)
			}
			taskTable.AddRow(task.ID, task.Title, due)
		}
		fmt.Println(taskTable)
	}

	if len(stats.UpcomingEvents) > 0 {
		fmt.Println("\nUpcoming events:")
		eventTable := uitable.New()
		eventTable.MaxColWidth = 50
		eventTable.AddRow("ID", "TITLE", "STARTS")
		for _, event := range stats.UpcomingEvents {
			eventTable.AddRow(
				event.ID,
				event.Title,
				event.StartTime.Format(time.RFC3339),
			)
		}
		fmt.Println(eventTable)
	}

	return nil
}
