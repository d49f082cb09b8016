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

var eventCommand = &cli.Command{
	Name:  "event",
	Usage: "Manage your family's schedule",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "List family events",
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
			Action: eventList,
		},
		{
			Name:      "get",
			Usage:     "Get a family event",
			ArgsUsage: "EVENT_ID",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: eventGet,
		},
		{
			Name:  "add",
			Usage: "Add a family event",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagTitle,
					Aliases:  []string{"t"},
					Usage:    "The event's title (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:    flagDescription,
					Aliases: []string{"d"},
					Usage:   "A description of the event",
				},
				&cli.StringFlag{
					Name:     flagStart,
					Usage:    "When the event starts, in RFC3339 format (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:     flagEnd,
					Usage:    "When the event ends, in RFC3339 format (required)",
					Required: true,
				},
			},
			Action: eventAdd,
		},
		{
			Name:      "update",
			Usage:     "Update a family event",
			ArgsUsage: "EVENT_ID",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    flagTitle,
					Aliases: []string{"t"},
					Usage:   "A new title for the event",
				},
				&cli.StringFlag{
					Name:    flagDescription,
					Aliases: []string{"d"},
					Usage:   "A new description of the event",
				},
				&cli.StringFlag{
					Name:  flagStart,
					Usage: "A new start time, in RFC3339 format",
				},
				&cli.StringFlag{
					Name:  flagEnd,
					Usage: "A new end time, in RFC3339 format",
				},
			},
			Action: eventUpdate,
		},
		{
			Name:      "remove",
			Usage:     "Remove a family event",
			ArgsUsage: "EVENT_ID",
			Action:    eventRemove,
		},
	},
}

func eventIDArg(c *cli.Context) (int64, error) {
	if c.Args().Len() != 1 {
		return 0, errors.New("a single EVENT_ID argument is required")
	}
	id, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
	if err != nil {
		return 0, errors.Errorf("%q is not a valid event id", c.Args().Get(0))
	}
	return id, nil
}

func eventTimeFlag(c *cli.Context, flag string) (*time.Time, error) {
	if !c.IsSet(flag) {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, c.String(flag))
	if err != nil {
		return nil, errors.Errorf(
			"%q is not a valid RFC3339 %s time",
			c.String(flag),
			flag,
		)
	}
	return &t, nil
}

func eventList(c *cli.Context) error {
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	events, err := client.FamilyEvents().List(
		c.Context,
		sdk.ListOptions{
			Page:    c.Int(flagPage),
			PerPage: c.Int(flagPerPage),
		},
	)
	if err != nil {
		return err
	}

	if len(events.Items) == 0 {
		fmt.Println("No family events found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.MaxColWidth = 50
		table.AddRow("ID", "TITLE", "STARTS", "ENDS")
		for _, event := range events.Items {
			table.AddRow(
				event.ID,
				event.Title,
				event.StartTime.Format(time.RFC3339),
				event.EndTime.Format(time.RFC3339),
			)
		}
		fmt.Println(table)
	default:
		if err := printStructured(output, events); err != nil {
			return err
		}
	}
	return nil
}

func eventGet(c *cli.Context) error {
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	id, err := eventIDArg(c)
	if err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	event, err := client.FamilyEvents().Get(c.Context, id)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "TITLE", "STARTS", "ENDS")
		table.AddRow(
			event.ID,
			event.Title,
			event.StartTime.Format(time.RFC3339),
			event.EndTime.Format(time.RFC3339),
		)
		fmt.Println(table)
		if event.Description != "" {
			fmt.Printf("\n%s\n", event.Description)
		}
	default:
		if err := printStructured(output, event); err != nil {
			return err
		}
	}
	return nil
}

func eventAdd(c *cli.Context) error {
	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	startTime, err := eventTimeFlag(c, flagStart)
	if err != nil {
		return err
	}
	endTime, err := eventTimeFlag(c, flagEnd)
	if err != nil {
		return err
	}

	event, err := client.FamilyEvents().Create(
		c.Context,
		sdk.FamilyEventSpec{
			Title:       c.String(flagTitle),
			Description: c.String(flagDescription),
			StartTime:   startTime,
			EndTime:     endTime,
		},
	)
	if err != nil {
		return err
	}

	fmt.Printf("Added event %q with id %d.\n", event.Title, event.ID)
	return nil
}

func eventUpdate(c *cli.Context) error {
	id, err := eventIDArg(c)
	if err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	startTime, err := eventTimeFlag(c, flagStart)
	if err != nil {
		return err
	}
	endTime, err := eventTimeFlag(c, flagEnd)
	if err != nil {
		return err
	}

	event, err := client.FamilyEvents().Update(
		c.Context,
		id,
		sdk.FamilyEventSpec{
			Title:       c.String(flagTitle),
			Description: c.String(flagDescription),
			StartTime:   startTime,
			EndTime:     endTime,
		},
	)
	if err != nil {
		return err
	}

	fmt.Printf("Updated event %d.\n", event.ID)
	return nil
}

func eventRemove(c *cli.Context) error {
	id, err := eventIDArg(c)
	if err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	if err := client.FamilyEvents().Delete(c.Context, id); err != nil {
		return err
	}

	fmt.Printf("Removed event %d.\n", id)
	return nil
}
