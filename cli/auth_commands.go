package main

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/hearthhq/hearth/sdk"
)

var loginCommand = &cli.Command{
	Name:  "login",
	Usage: "Log in to Hearth",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    flagEmail,
			Aliases: []string{"e"},
			Usage:   "The email address to log in with",
		},
		&cli.StringFlag{
			Name:    flagPassword,
			Aliases: []string{"p"},
			Usage:   "Specify the password non-interactively",
		},
	},
	Action: login,
}

var logoutCommand = &cli.Command{
	Name:   "logout",
	Usage:  "Log out of Hearth",
	Action: logout,
}

var registerCommand = &cli.Command{
	Name:  "register",
	Usage: "Create a new Hearth account and log in",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    flagEmail,
			Aliases: []string{"e"},
			Usage:   "The email address for the new account",
		},
		&cli.StringFlag{
			Name:    flagPassword,
			Aliases: []string{"p"},
			Usage:   "Specify the password non-interactively",
		},
		&cli.StringFlag{
			Name:  flagFirstName,
			Usage: "Your first name",
		},
		&cli.StringFlag{
			Name:  flagLastName,
			Usage: "Your last name",
		},
		&cli.StringFlag{
			Name:    flagLocation,
			Aliases: []string{"l"},
			Usage:   "Your town or neighborhood",
		},
		&cli.IntSliceFlag{
			Name:  flagChildAge,
			Usage: "Age of one of your children; repeatable",
		},
		&cli.StringSliceFlag{
			Name:  flagGoal,
			Usage: "A parenting goal tag; repeatable",
		},
	},
	Action: register,
}

var whoamiCommand = &cli.Command{
	Name:  "whoami",
	Usage: "Show the profile of the currently logged in user",
	Flags: []cli.Flag{
		cliFlagOutput,
	},
	Action: whoami,
}

var accountCommand = &cli.Command{
	Name:  "account",
	Usage: "Manage your account",
	Subcommands: []*cli.Command{
		{
			Name:  "update",
			Usage: "Update your profile",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  flagFirstName,
					Usage: "New first name",
				},
				&cli.StringFlag{
					Name:  flagLastName,
					Usage: "New last name",
				},
				&cli.StringFlag{
					Name:    flagLocation,
					Aliases: []string{"l"},
					Usage:   "New town or neighborhood",
				},
				&cli.IntSliceFlag{
					Name:  flagChildAge,
					Usage: "Age of one of your children; repeatable, replaces the stored list",
				},
				&cli.StringSliceFlag{
					Name:  flagGoal,
					Usage: "A parenting goal tag; repeatable, replaces the stored list",
				},
			},
			Action: accountUpdate,
		},
	},
}

func login(c *cli.Context) error {
	email := c.String(flagEmail)
	password := c.String(flagPassword)

	if email == "" {
		prompt := &survey.Input{Message: "Email"}
		if err := survey.AskOne(prompt, &email); err != nil {
			return err
		}
	}
	if password == "" {
		prompt := &survey.Password{Message: "Password"}
		if err := survey.AskOne(prompt, &password); err != nil {
			return err
		}
	}

	sess, _, err := getSession(c)
	if err != nil {
		return err
	}

	authResponse, err := sess.Login(c.Context, email, password)
	if err != nil {
		return err
	}

	fmt.Printf("\nYou are logged in as %s.\n", describeUser(authResponse.User))
	return nil
}

func logout(c *cli.Context) error {
	if c.Args().Len() != 0 {
		return errors.New("logout requires no arguments")
	}

	sess, _, err := getSession(c)
	if err != nil {
		return err
	}

	// Clears the token locally no matter what; the server-side notification
	// is best-effort and its failure is deliberately invisible here.
	sess.Logout(c.Context)

	if err := deleteChatSession(); err != nil {
		return err
	}

	fmt.Println("Logout was successful.")
	return nil
}

// registrationPayload gathers register inputs for caller-side validation
// before anything is sent to the API.
type registrationPayload struct {
	Email                string
	Password             string
	PasswordConfirmation string
	FirstName            string
	LastName             string
	Location             string
}

func (r registrationPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
		validation.Field(
			&r.PasswordConfirmation,
			validation.Required,
			validation.By(func(value interface{}) error {
				if confirmation, _ := value.(string); confirmation != r.Password {
					return errors.New("passwords do not match")
				}
				return nil
			}),
		),
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Location, validation.Required),
	)
}

func register(c *cli.Context) error {
	payload := registrationPayload{
		Email:     c.String(flagEmail),
		Password:  c.String(flagPassword),
		FirstName: c.String(flagFirstName),
		LastName:  c.String(flagLastName),
		Location:  c.String(flagLocation),
	}

	questions := []*survey.Question{}
	if payload.Email == "" {
		questions = append(questions, &survey.Question{
			Name:   "email",
			Prompt: &survey.Input{Message: "Email"},
		})
	}
	if payload.FirstName == "" {
		questions = append(questions, &survey.Question{
			Name:   "firstName",
			Prompt: &survey.Input{Message: "First name"},
		})
	}
	if payload.LastName == "" {
		questions = append(questions, &survey.Question{
			Name:   "lastName",
			Prompt: &survey.Input{Message: "Last name"},
		})
	}
	if payload.Location == "" {
		questions = append(questions, &survey.Question{
			Name:   "location",
			Prompt: &survey.Input{Message: "Town or neighborhood"},
		})
	}
	if len(questions) > 0 {
		if err := survey.Ask(questions, &payload); err != nil {
			return err
		}
	}
	if payload.Password == "" {
		prompt := &survey.Password{Message: "Password"}
		if err := survey.AskOne(prompt, &payload.Password); err != nil {
			return err
		}
		confirm := &survey.Password{Message: "Confirm password"}
		if err := survey.AskOne(
			confirm,
			&payload.PasswordConfirmation,
		); err != nil {
			return err
		}
	} else {
		payload.PasswordConfirmation = payload.Password
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	sess, _, err := getSession(c)
	if err != nil {
		return err
	}

	authResponse, err := sess.Register(c.Context, sdk.RegisterRequest{
		Email:                payload.Email,
		Password:             payload.Password,
		PasswordConfirmation: payload.PasswordConfirmation,
		FirstName:            payload.FirstName,
		LastName:             payload.LastName,
		Location:             payload.Location,
		ChildrenAges:         c.IntSlice(flagChildAge),
		ParentingGoals:       c.StringSlice(flagGoal),
	})
	if err != nil {
		return err
	}

	fmt.Printf(
		"\nWelcome to Hearth, %s! You are now logged in.\n",
		describeUser(authResponse.User),
	)
	return nil
}

func whoami(c *cli.Context) error {
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	_, sess, err := getClient(c)
	if err != nil {
		return err
	}

	snapshot := sess.Snapshot()

	switch strings.ToLower(output) {
	case "table":
		user := snapshot.User
		table := uitable.New()
		table.AddRow("ID", "NAME", "EMAIL", "LOCATION", "CHILDREN")
		table.AddRow(
			user.ID,
			describeUser(*user),
			user.Email,
			user.Location,
			len(user.ChildrenAges),
		)
		fmt.Println(table)
	default:
		if err := printStructured(output, snapshot.User); err != nil {
			return err
		}
	}
	return nil
}

func accountUpdate(c *cli.Context) error {
	client, sess, err := getClient(c)
	if err != nil {
		return err
	}

	update := sdk.UserUpdate{
		FirstName:      c.String(flagFirstName),
		LastName:       c.String(flagLastName),
		Location:       c.String(flagLocation),
		ChildrenAges:   c.IntSlice(flagChildAge),
		ParentingGoals: c.StringSlice(flagGoal),
	}

	user, err := client.Users().Update(c.Context, update)
	if err != nil {
		return err
	}

	// Keep the in-memory session's view of the profile in step with what the
	// server just accepted.
	sess.UpdateUser(user)

	fmt.Printf("Profile updated for %s.\n", describeUser(user))
	return nil
}
