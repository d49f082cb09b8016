package main

import "github.com/urfave/cli/v2"

const (
	flagCategory    = "category"
	flagChildAge    = "child-age"
	flagCondition   = "condition"
	flagDescription = "description"
	flagDue         = "due"
	flagEmail       = "email"
	flagEnd         = "end"
	flagFirstName   = "first-name"
	flagGoal        = "goal"
	flagInsecure    = "insecure"
	flagLastName    = "last-name"
	flagLocation    = "location"
	flagMaxPrice    = "max-price"
	flagMinPrice    = "min-price"
	flagNew         = "new"
	flagOutput      = "output"
	flagPage        = "page"
	flagPassword    = "password"
	flagPerPage     = "per-page"
	flagPrice       = "price"
	flagPriority    = "priority"
	flagStart       = "start"
	flagTitle       = "title"
)

var (
	cliFlagOutput = &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage: "Return output in the specified format; supported formats: " +
			"table, yaml, json",
		Value: "table",
	}
)
