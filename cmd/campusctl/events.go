package main

import (
	"github.com/joshua-takyi/campus/internal/models"
	"github.com/spf13/cobra"
)

func (a *app) eventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List, view and manage events",
	}
	cmd.AddCommand(
		a.listEventsCmd(),
		a.latestEventsCmd(),
		a.viewEventCmd(),
		a.createEventCmd(),
		a.updateEventCmd(),
		a.deleteEventCmd(),
	)
	return cmd
}

func (a *app) listEventsCmd() *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events ordered by date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}

			var events []*models.Event
			if userID != "" {
				events, err = c.ListEventsByCreator(cmd.Context(), userID)
			} else {
				events, err = c.ListEvents(cmd.Context())
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), events)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "only events created by this user id")
	return cmd
}

func (a *app) latestEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Show the newest events and whether any are unseen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			events, err := c.ListEvents(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), a.tracker().Latest(cmd.Context(), events))
		},
	}
}

func (a *app) viewEventCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Show one event and mark it as seen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			event, err := c.GetEvent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := a.tracker().MarkViewed(cmd.Context(), event.ID); err != nil {
				a.logger.Warn("Could not mark event as viewed", "id", event.ID, "error", err)
			}
			return printJSON(cmd.OutOrStdout(), event)
		},
	}
}

func bindEventFlags(cmd *cobra.Command, in *models.EventInput) {
	f := cmd.Flags()
	f.StringVar(&in.Title, "title", "", "event title")
	f.StringVar(&in.Community, "community", "", "organizing community")
	f.StringVar(&in.Description, "description", "", "event description")
	f.StringVar(&in.Date, "date", "", "event date, YYYY-MM-DD or RFC 3339")
	f.StringVar(&in.ImageURL, "image-url", "", "cover image URL")
}

func (a *app) createEventCmd() *cobra.Command {
	var in models.EventInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			resp, err := c.CreateEvent(cmd.Context(), &in)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	bindEventFlags(cmd, &in)
	cmd.Flags().StringVar(&in.CreatedBy, "created-by", "", "id of the creating user")
	return cmd
}

func (a *app) updateEventCmd() *cobra.Command {
	var in models.EventInput
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace the details of an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			resp, err := c.UpdateEvent(cmd.Context(), args[0], &in)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	bindEventFlags(cmd, &in)
	return cmd
}

func (a *app) deleteEventCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			resp, err := c.DeleteEvent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}
