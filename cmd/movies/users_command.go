package main

import (
	"errors"
	"fmt"

	"github.com/mpfechner/movie-manager-cli/internal/util"
	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user profiles",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all user profiles",
	RunE:  runUsersList,
}

var usersCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new user profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersCreate,
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersCreateCmd)
}

func runUsersList(cmd *cobra.Command, args []string) error {
	setupLogging()

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	users, err := db.ListUsers()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 {
		util.InfoLog("No users yet. Create one with 'movies users create <name>'.")
		return nil
	}

	for _, u := range users {
		count, err := db.CountMovies(u.ID)
		if err != nil {
			return err
		}
		fmt.Printf("%d. %s (%d movies)\n", u.ID, u.Name, count)
	}

	return nil
}

func runUsersCreate(cmd *cobra.Command, args []string) error {
	setupLogging()

	name := args[0]
	if name == "" {
		return fmt.Errorf("user name cannot be empty")
	}

	lock, err := lockStore()
	if err != nil {
		return err
	}
	defer lock.Unlock()

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.CreateUser(name)
	if err != nil {
		if errors.Is(err, util.ErrDuplicateUser) {
			util.WarnLog("User '%s' already exists.", name)
			return nil
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	util.SuccessLog("User '%s' created (id %d).", name, id)
	return nil
}
