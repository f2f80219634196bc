package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/eclinichms/eclinic-admin/factory"
	"github.com/eclinichms/eclinic-admin/internal/admin"
	"github.com/eclinichms/eclinic-admin/internal/config"
)

func newSuperuserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csu",
		Short: "Create a superuser account",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := promptSuperuser()
			if err != nil {
				return err
			}

			cfg, err := config.New(envFile)
			if err != nil {
				return err
			}

			f, cleanup, err := factory.New(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := f.Admin.CreateSuperuser(cmd.Context(), *in); err != nil {
				return err
			}
			return nil
		},
	}
	return cmd
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize self-request bootstrap rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(envFile)
			if err != nil {
				return err
			}

			f, cleanup, err := factory.New(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			return f.Admin.Bootstrap(cmd.Context())
		},
	}
}

func promptSuperuser() (*admin.SuperuserInput, error) {
	reader := bufio.NewReader(os.Stdin)

	username, err := readValue(reader, "Username: ")
	if err != nil {
		return nil, err
	}
	firstName, err := readValue(reader, "First Name: ")
	if err != nil {
		return nil, err
	}
	lastName, err := readValue(reader, "Last Name: ")
	if err != nil {
		return nil, err
	}
	email, err := readValue(reader, "Email: ")
	if err != nil {
		return nil, err
	}

	pass, err := readPassword(reader, "Enter your password: ")
	if err != nil {
		return nil, err
	}
	confirm, err := readPassword(reader, "Confirm your password: ")
	if err != nil {
		return nil, err
	}
	if pass != confirm {
		return nil, fmt.Errorf("passwords do not match")
	}

	fmt.Println("\n---------CONFIRM-------------------")
	fmt.Printf("  Username:\t%s\n", username)
	fmt.Printf("First Name:\t%s\n", firstName)
	fmt.Printf(" Last Name:\t%s\n", lastName)
	fmt.Printf("     Email:\t%s\n", email)
	fmt.Println("-----------------------------------")
	answer, err := readValue(reader, "Create superuser account? [Y/N]: ")
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(answer, "y") {
		return nil, fmt.Errorf("operation cancelled")
	}

	return &admin.SuperuserInput{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  pass,
	}, nil
}

func readValue(reader *bufio.Reader, prompt string) (string, error) {
	label := strings.TrimSuffix(prompt, ": ")

	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read %s: %w", label, err)
	}

	value := strings.TrimSpace(line)
	if value == "" {
		return "", fmt.Errorf("%s must not be empty", label)
	}
	return value, nil
}

// readPassword suppresses echo when stdin is a terminal and falls back to a
// plain line read when input is piped.
func readPassword(reader *bufio.Reader, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return readValue(reader, prompt)
	}

	fmt.Print(prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("unable to read password: %w", err)
	}
	return string(raw), nil
}
