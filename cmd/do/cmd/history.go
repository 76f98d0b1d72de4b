package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/templui/brightlog/internal/app"
	"github.com/templui/brightlog/internal/model"
	"github.com/templui/brightlog/internal/repository"
	"github.com/templui/brightlog/internal/service"
)

func HistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <nickname>",
		Short: "Print a user's goals and latest entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadStoreConfig()
			if err != nil {
				return err
			}

			stores, err := app.OpenStores(cfg)
			if err != nil {
				return err
			}
			defer stores.Close()

			return printHistory(cmd.Context(), cmd.OutOrStdout(), stores, args[0], limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", service.RecentLimit, "number of entries (max 5)")
	return cmd
}

// printHistory never creates a profile; unknown nicknames are an error.
func printHistory(ctx context.Context, w io.Writer, stores *app.Stores, nickname string, limit int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	profile, err := stores.Profiles.ByNickname(ctx, strings.TrimSpace(nickname))
	if errors.Is(err, repository.ErrProfileNotFound) {
		return fmt.Errorf("no user with nickname %q", nickname)
	}
	if err != nil {
		return err
	}

	goals, err := service.NewGoalsService(stores.Goals).Load(ctx, profile.UserUUID)
	if err != nil {
		return err
	}

	if limit <= 0 || limit > service.RecentLimit {
		limit = service.RecentLimit
	}
	entries, err := stores.Logs.Recent(ctx, profile.UserUUID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s (%s)\n\n", profile.Nickname, profile.UserUUID)
	for _, area := range model.GoalAreas {
		value := goals.Field(area)
		if strings.TrimSpace(value) == "" {
			value = "(not set)"
		}
		fmt.Fprintf(w, "%-14s %s\n", area+":", value)
	}

	fmt.Fprintln(w)
	if len(entries) == 0 {
		fmt.Fprintln(w, "no entries yet")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %s\n", e.Day(), e.Entry)
	}
	return nil
}
