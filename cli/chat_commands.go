package main

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/golang/glog"
	"github.com/urfave/cli/v2"
)

var chatCommand = &cli.Command{
	Name:      "chat",
	Usage:     "Ask the AI parenting assistant a question",
	ArgsUsage: "[MESSAGE]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    flagNew,
			Aliases: []string{"n"},
			Usage:   "Start a new conversation instead of continuing the last one",
		},
	},
	Action: chat,
}

func chat(c *cli.Context) error {
	client, _, err := getClient(c)
	if err != nil {
		return err
	}

	message := strings.Join(c.Args().Slice(), " ")
	if message == "" {
		if err := survey.AskOne(
			&survey.Input{Message: "What would you like to ask?"},
			&message,
			survey.WithValidator(survey.Required),
		); err != nil {
			return err
		}
	}

	sessionID := ""
	if !c.Bool(flagNew) {
		if sessionID, err = getChatSession(); err != nil {
			return err
		}
	}

	chatResponse, err := client.Chat().Query(c.Context, message, sessionID)
	if err != nil {
		return err
	}

	// Conversation continuity is best effort. Failing to remember the session
	// id should not mask a reply we already have in hand.
	if err := saveChatSession(chatResponse.SessionID); err != nil {
		glog.Warningf("error saving chat session id: %s", err)
	}

	fmt.Println(chatResponse.AIResponse)
	return nil
}
