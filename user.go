package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sidereusnuntius/commune/internal/domain"
	"github.com/sidereusnuntius/commune/internal/service"
	core "github.com/sidereusnuntius/commune/internal/service/impl"
	"github.com/sidereusnuntius/commune/internal/state"
	"github.com/spf13/cobra"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage local accounts",
	}
	cmd.AddCommand(userCreateCmd())
	return cmd
}

func userCreateCmd() *cobra.Command {
	var (
		username string
		email    string
		kind     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a local actor",
		Long: `Create a local actor with its key pair. The password is read from the first line of standard input;
an empty line creates an account nobody can log into.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			password, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("reading password: %w", err)
			}

			d, store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer d.Close()

			svc := core.New(state.State{DB: store, Config: cfg})
			a, err := svc.CreateUser(cmd.Context(), service.NewUser{
				Username: username,
				Password: strings.TrimRight(password, "\r\n"),
				Email:    email,
				Kind:     domain.ActorKind(kind),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.URI)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&kind, "kind", "k", string(domain.Person), "actor type: Person, Group, Service or Application")
	cmd.MarkFlagRequired("username")

	return cmd
}
