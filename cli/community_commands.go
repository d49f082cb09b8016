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

var communityCommand = &cli.Command{
	Name:  "community",
	Usage: "Find and participate in local parenting communities",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "List communities",
			Flags: []cli.Flag{
				cliFlagOutput,
				&cli.StringFlag{
					Name:    flagLocation,
					Aliases: []string{"l"},
					Usage:   "Return only communities in the specified location",
				},
				&cli.StringFlag{
					Name:    flagCategory,
					Aliases: []string{"c"},
					Usage:   "Return only communities in the specified category",
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
			Action: communityList,
		},
		{
			Name:      "get",
			Usage:     "Get a community",
			ArgsUsage: "COMMUNITY_ID",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: communityGet,
		},
		{
			Name:  "create",
			Usage: "Create a new community",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagTitle,
					Aliases:  []string{"t"},
					Usage:    "A name for the community (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:    flagDescription,
					Aliases: []string{"d"},
					Usage:   "A description of the community",
				},
				&cli.StringFlag{
					Name:     flagLocation,
					Aliases:  []string{"l"},
					Usage:    "The community's location (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:    flagCategory,
					Aliases: []string{"c"},
					Usage:   "The community's category",
				},
			},
			Action: communityCreate,
		},
		{
			Name:      "join",
			Usage:     "Join a community",
			ArgsUsage: "COMMUNITY_ID",
			Action:    communityJoin,
		},
		{
			Name:      "posts",
			Usage:     "List a community's posts",
			ArgsUsage: "COMMUNITY_ID",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: communityPosts,
		},
		{
			Name:      "post",
			Usage:     "Publish a post to a community",
			ArgsUsage: "COMMUNITY_ID",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagTitle,
					Aliases:  []string{"t"},
					Usage:    "The post's title (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:     flagDescription,
					Aliases:  []string{"d"},
					Usage:    "The post's content (required)",
					Required: true,
				},
			},
			Action: communityPost,
		},
	},
}

func communityIDArg(c *cli.Context) (int64, error) {
	if c.Args().Len() != 1 {
		return 0, errors.New("a single COMMUNITY_ID argument is required")
	}
	id, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
	if err != nil {
		return 0, errors.Errorf(
			"%q is not a valid community id",
			c.Args().Get(0),
		)
	}
	return id, nil
}

func communityList(c *cli.Context) error {
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	communities, err := client.Communities().List(
		c.Context,
		sdk.CommunitySelector{
			Location: c.String(flagLocation),
			Category: c.String(flagCategory),
		},
		sdk.ListOptions{
			Page:    c.Int(flagPage),
			PerPage: c.Int(flagPerPage),
		},
	)
	if err != nil {
		return err
	}

	if len(communities.Items) == 0 {
		fmt.Println("No communities found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "LOCATION", "CATEGORY", "MEMBERS")
		for _, community := range communities.Items {
			table.AddRow(
				community.ID,
				community.Name,
				community.Location,
				community.Category,
				community.MembersCount,
			)
		}
		fmt.Println(table)
	default:
		if err := printStructured(output, communities); err != nil {
			return err
		}
	}
	return nil
}

func communityGet(c *cli.Context) error {
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	id, err := communityIDArg(c)
	if err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	community, err := client.Communities().Get(c.Context, id)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "LOCATION", "CATEGORY", "MEMBERS")
		table.AddRow(
			community.ID,
			community.Name,
			community.Location,
			community.Category,
			community.MembersCount,
		)
		fmt.Println(table)
		if community.Description != "" {
			fmt.Printf("\n%s\n", community.Description)
		}
	default:
		if err := printStructured(output, community); err != nil {
			return err
		}
	}
	return nil
}

func communityCreate(c *cli.Context) error {
	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	community, err := client.Communities().Create(
		c.Context,
		sdk.CommunityCreate{
			Name:        c.String(flagTitle),
			Description: c.String(flagDescription),
			Location:    c.String(flagLocation),
			Category:    c.String(flagCategory),
		},
	)
	if err != nil {
		return err
	}

	fmt.Printf("Created community %q with id %d.\n", community.Name, community.ID)
	return nil
}

func communityJoin(c *cli.Context) error {
	id, err := communityIDArg(c)
	if err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	if err := client.Communities().Join(c.Context, id); err != nil {
		return err
	}

	fmt.Printf("You have joined community %d.\n", id)
	return nil
}

func communityPosts(c *cli.Context) error {
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	id, err := communityIDArg(c)
	if err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	posts, err := client.Communities().ListPosts(c.Context, id)
	if err != nil {
		return err
	}

	if len(posts.Items) == 0 {
		fmt.Println("No posts found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.MaxColWidth = 60
		table.AddRow("ID", "TITLE", "AUTHOR", "POSTED")
		for _, post := range posts.Items {
			table.AddRow(
				post.ID,
				post.Title,
				post.Author.Name,
				post.TimeAgo,
			)
		}
		fmt.Println(table)
	default:
		if err := printStructured(output, posts); err != nil {
			return err
		}
	}
	return nil
}

func communityPost(c *cli.Context) error {
	id, err := communityIDArg(c)
	if err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	post, err := client.Communities().CreatePost(
		c.Context,
		id,
		sdk.PostCreate{
			Title:   c.String(flagTitle),
			Content: c.String(flagDescription),
		},
	)
	if err != nil {
		return err
	}

	fmt.Printf("Published post %q with id %d.\n", post.Title, post.ID)
	return nil
}
