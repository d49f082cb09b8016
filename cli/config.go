package main

import (
	"io/ioutil"
	"os"
	"path"
	"strings"

	"github.com/kelseyhightower/envconfig"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	"github.com/hearthhq/hearth/internal/file"
)

const envconfigPrefix = "HEARTH"

// config represents client configuration drawn from the environment. Note
// that the bearer token is deliberately NOT part of this: the token file is
// the one and only piece of persisted session state, and it is owned by the
// session package's TokenStore.
type config struct {
	APIAddress string `envconfig:"API_ADDRESS" default:"http://localhost:3003"`
}

func getConfig() (config, error) {
	c := config{}
	if err := envconfig.Process(envconfigPrefix, &c); err != nil {
		return c, errors.Wrap(
			err,
			"error getting hearth configuration from environment",
		)
	}
	return c, nil
}

func getHearthHome() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "error locating user's home directory")
	}
	return path.Join(homeDir, ".hearth"), nil
}

// getChatSession returns the id of the last chat conversation, if any, so
// that successive `hearth chat` invocations continue one conversation.
func getChatSession() (string, error) {
	hearthHome, err := getHearthHome()
	if err != nil {
		return "", err
	}
	chatSessionFile := path.Join(hearthHome, "chat_session")
	if !file.Exists(chatSessionFile) {
		return "", nil
	}
	sessionBytes, err := ioutil.ReadFile(chatSessionFile)
	if err != nil {
		return "", errors.Wrapf(
			err,
			"error reading chat session file at %s",
			chatSessionFile,
		)
	}
	return strings.TrimSpace(string(sessionBytes)), nil
}

func saveChatSession(sessionID string) error {
	hearthHome, err := getHearthHome()
	if err != nil {
		return err
	}
	if _, err = os.Stat(hearthHome); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(
				err,
				"error checking for existence of hearth home at %s",
				hearthHome,
			)
		}
		if err = os.MkdirAll(hearthHome, 0755); err != nil {
			return errors.Wrapf(
				err,
				"error creating hearth home at %s",
				hearthHome,
			)
		}
	}
	chatSessionFile := path.Join(hearthHome, "chat_session")
	if err := ioutil.WriteFile(
		chatSessionFile,
		[]byte(sessionID),
		0644,
	); err != nil {
		return errors.Wrapf(err, "error writing to %s", chatSessionFile)
	}
	return nil
}

func deleteChatSession() error {
	hearthHome, err := getHearthHome()
	if err != nil {
		return err
	}
	chatSessionFile := path.Join(hearthHome, "chat_session")
	if !file.Exists(chatSessionFile) {
		return nil
	}
	if err := os.Remove(chatSessionFile); err != nil {
		return errors.Wrap(err, "error deleting chat session")
	}
	return nil
}
