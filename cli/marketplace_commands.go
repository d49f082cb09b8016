package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/hearthhq/hearth/sdk"
)

var marketplaceCommand = &cli.Command{
	Name:    "market",
	Aliases: []string{"marketplace"},
	Usage:   "Buy and sell secondhand children's items",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "List marketplace items",
			Flags: []cli.Flag{
				cliFlagOutput,
				&cli.StringFlag{
					Name:    flagCategory,
					Aliases: []string{"c"},
					Usage:   "Return only items in the specified category",
				},
				&cli.StringFlag{
					Name:  flagCondition,
					Usage: "Return only items in the specified condition",
				},
				&cli.StringFlag{
					Name:    flagLocation,
					Aliases: []string{"l"},
					Usage:   "Return only items in the specified location",
				},
				&cli.Float64Flag{
					Name:  flagMinPrice,
					Usage: "Return only items priced at or above this amount",
				},
				&cli.Float64Flag{
					Name:  flagMaxPrice,
					Usage: "Return only items priced at or below this amount",
				},
				&cli.IntFlag{
					Name:  flagPage,
					Usage: "Return the specified page of results",
				},
				&cli.IntFlag{
					Name:  flagPerPage,
					Usage: "Return the specified number of results per page",
				},
			},
			Action: marketplaceList,
		},
		{
			Name:      "get",
			Usage:     "Get a marketplace item",
			ArgsUsage: "ITEM_ID",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: marketplaceGet,
		},
		{
			Name:  "sell",
			Usage: "List an item for sale",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagTitle,
					Aliases:  []string{"t"},
					Usage:    "A title for the listing (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:    flagDescription,
					Aliases: []string{"d"},
					Usage:   "A description of the item",
				},
				&cli.Float64Flag{
					Name:     flagPrice,
					Aliases:  []string{"p"},
					Usage:    "The asking price (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:    flagCategory,
					Aliases: []string{"c"},
					Usage:   "The item's category",
				},
				&cli.StringFlag{
					Name:  flagCondition,
					Usage: "The item's condition",
				},
				&cli.StringFlag{
					Name:    flagLocation,
					Aliases: []string{"l"},
					Usage:   "Where the item can be picked up",
				},
			},
			Action: marketplaceSell,
		},
		{
			Name:      "update",
			Usage:     "Update one of your listings",
			ArgsUsage: "ITEM_ID",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    flagTitle,
					Aliases: []string{"t"},
					Usage:   "A new title for the listing",
				},
				&cli.StringFlag{
					Name:    flagDescription,
					Aliases: []string{"d"},
					Usage:   "A new description of the item",
				},
				&cli.Float64Flag{
					Name:    flagPrice,
					Aliases: []string{"p"},
					Usage:   "A new asking price",
				},
				&cli.StringFlag{
					Name:    flagCategory,
					Aliases: []string{"c"},
					Usage:   "A new category for the item",
				},
				&cli.StringFlag{
					Name:  flagCondition,
					Usage: "A new condition for the item",
				},
				&cli.StringFlag{
					Name:    flagLocation,
					Aliases: []string{"l"},
					Usage:   "A new pickup location",
				},
			},
			Action: marketplaceUpdate,
		},
		{
			Name:      "remove",
			Usage:     "Remove one of your listings",
			ArgsUsage: "ITEM_ID",
			Action:    marketplaceRemove,
		},
	},
}

func marketplaceItemIDArg(c *cli.Context) (int64, error) {
	if c.Args().Len() != 1 {
		return 0, errors.New("a single ITEM_ID argument is required")
	}
	id, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
	if err != nil {
		return 0, errors.Errorf(
			"%q is not a valid marketplace item id",
			c.Args().Get(0),
		)
	}
	return id, nil
}

func marketplaceList(c *cli.Context) error {
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	selector := sdk.MarketplaceSelector{
		Category:  c.String(flagCategory),
		Condition: c.String(flagCondition),
		Location:  c.String(flagLocation),
	}
	if c.IsSet(flagMinPrice) {
		minPrice := c.Float64(flagMinPrice)
		selector.MinPrice = &minPrice
	}
	if c.IsSet(flagMaxPrice) {
		maxPrice := c.Float64(flagMaxPrice)
		selector.MaxPrice = &maxPrice
	}

	items, err := client.Marketplace().List(
		c.Context,
		selector,
		sdk.ListOptions{
			Page:    c.Int(flagPage),
			PerPage: c.Int(flagPerPage),
		},
	)
	if err != nil {
		return err
	}

	if len(items.Items) == 0 {
		fmt.Println("No marketplace items found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.MaxColWidth = 50
		table.AddRow("ID", "TITLE", "PRICE", "CONDITION", "LOCATION", "SELLER")
		for _, item := range items.Items {
			table.AddRow(
				item.ID,
				item.Title,
				fmt.Sprintf("$%.2f", item.Price),
				item.Condition,
				item.Location,
				item.Seller.Name,
			)
		}
		fmt.Println(table)
	default:
		if err := printStructured(output, items); err != nil {
			return err
		}
	}
	return nil
}

func marketplaceGet(c *cli.Context) error {
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	id, err := marketplaceItemIDArg(c)
	if err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	item, err := client.Marketplace().Get(c.Context, id)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "TITLE", "PRICE", "CONDITION", "LOCATION", "SELLER")
		table.AddRow(
			item.ID,
			item.Title,
			fmt.Sprintf("$%.2f", item.Price),
			item.Condition,
			item.Location,
			item.Seller.Name,
		)
		fmt.Println(table)
		if item.Description != "" {
			fmt.Printf("\n%s\n", item.Description)
		}
	default:
		if err := printStructured(output, item); err != nil {
			return err
		}
	}
	return nil
}

func marketplaceSell(c *cli.Context) error {
	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	price := c.Float64(flagPrice)
	item, err := client.Marketplace().Create(
		c.Context,
		sdk.MarketplaceItemSpec{
			Title:       c.String(flagTitle),
			Description: c.String(flagDescription),
			Price:       &price,
			Category:    c.String(flagCategory),
			Condition:   c.String(flagCondition),
			Location:    c.String(flagLocation),
		},
	)
	if err != nil {
		return err
	}

	fmt.Printf("Listed %q for sale with id %d.\n", item.Title, item.ID)
	return nil
}

func marketplaceUpdate(c *cli.Context) error {
	id, err := marketplaceItemIDArg(c)
	if err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	spec := sdk.MarketplaceItemSpec{
		Title:       c.String(flagTitle),
		Description: c.String(flagDescription),
		Category:    c.String(flagCategory),
		Condition:   c.String(flagCondition),
		Location:    c.String(flagLocation),
	}
	if c.IsSet(flagPrice) {
		price := c.Float64(flagPrice)
		spec.Price = &price
	}

	item, err := client.Marketplace().Update(c.Context, id, spec)
	if err != nil {
		return err
	}

	fmt.Printf("Updated listing %d.\n", item.ID)
	return nil
}

func marketplaceRemove(c *cli.Context) error {
	id, err := marketplaceItemIDArg(c)
	if err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	if err := client.Marketplace().Delete(c.Context, id); err != nil {
		return err
	}

	fmt.Printf("Removed listing %d.\n", id)
	return nil
}
