// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"hamour/internal/apiclient"
	"hamour/internal/auth"
	"hamour/internal/config"
	"hamour/internal/content"
	"hamour/internal/logging"
	"hamour/internal/models"
)

// errLoginRequired is returned by admin commands run without a session.
var errLoginRequired = errors.New("login required: run `hamour admin login <secret>` first")

// apiURL overrides API_URL for the admin and ticket commands.
var apiURL string

// openContent connects a content store to the server and hydrates it.
func openContent(ctx context.Context) (*content.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	logging.Setup(cfg.LogFormat, cfg.LogLevel)

	base := cfg.APIURL
	if apiURL != "" {
		base = apiURL
	}
	client := apiclient.New(base, nil)

	s := content.New(client,
		content.WithAuthenticator(auth.Remote{Checker: client}),
		content.WithSessionMarker(content.FileMarker{Path: cfg.SessionFile}),
	)
	s.Hydrate(ctx)
	return s, nil
}

// adminRun wraps fn so it only runs for an authenticated session.
func adminRun(fn func(cmd *cobra.Command, s *content.Store, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openContent(cmd.Context())
		if err != nil {
			return err
		}
		if s.Navigate(content.PageAdmin) != content.PageAdmin {
			return errLoginRequired
		}
		return fn(cmd, s, args)
	}
}

func newAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage site content",
		Long:  `Edit settings, news and support tickets on a running content server.`,
	}
	cmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "content server URL (default $API_URL)")

	cmd.AddCommand(
		newLoginCommand(),
		newLogoutCommand(),
		newSettingsCommand(),
		newNewsCommand(),
		newTicketsCommand(),
		newUploadCommand(),
	)
	return cmd
}

func newLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login <secret>",
		Short: "Start an admin session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openContent(cmd.Context())
			if err != nil {
				return err
			}
			if !s.Login(cmd.Context(), args[0]) {
				return errors.New("invalid admin secret")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged in")
			return nil
		},
	}
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the admin session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openContent(cmd.Context())
			if err != nil {
				return err
			}
			s.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newNewsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "List, add and delete news items",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List news, newest first",
		Args:  cobra.NoArgs,
		RunE: adminRun(func(cmd *cobra.Command, s *content.Store, _ []string) error {
			return printNews(cmd, s.News())
		}),
	}

	var draft models.NewsDraft
	var image string
	add := &cobra.Command{
		Use:   "add",
		Short: "Publish a news item",
		Args:  cobra.NoArgs,
		RunE: adminRun(func(cmd *cobra.Command, s *content.Store, _ []string) error {
			if image != "" {
				url, err := uploadFile(cmd.Context(), s, image, "news")
				if err != nil {
					return err
				}
				draft.ThumbnailURL = url
			}
			item, err := s.AddNews(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added news %s\n", item.ID)
			return nil
		}),
	}
	add.Flags().StringVar(&draft.Title, "title", "", "headline")
	add.Flags().StringVar(&draft.Excerpt, "excerpt", "", "short summary")
	add.Flags().StringVar(&draft.Category, "category", "", "category label")
	add.Flags().StringVar(&draft.ThumbnailURL, "thumbnail", "", "thumbnail image URL")
	add.Flags().StringVar(&image, "image", "", "upload this file and use it as the thumbnail")
	add.MarkFlagsMutuallyExclusive("thumbnail", "image")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a news item",
		Args:  cobra.ExactArgs(1),
		RunE: adminRun(func(cmd *cobra.Command, s *content.Store, args []string) error {
			return s.DeleteNews(cmd.Context(), args[0])
		}),
	}

	cmd.AddCommand(list, add, del)
	return cmd
}

func newTicketsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "List and delete support tickets",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List support tickets, newest first",
		Args:  cobra.NoArgs,
		RunE: adminRun(func(cmd *cobra.Command, s *content.Store, _ []string) error {
			return printTickets(cmd, s.Tickets())
		}),
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a support ticket",
		Args:  cobra.ExactArgs(1),
		RunE: adminRun(func(cmd *cobra.Command, s *content.Store, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("ticket id %q is not a number", args[0])
			}
			return s.DeleteTicket(cmd.Context(), id)
		}),
	}

	cmd.AddCommand(list, del)
	return cmd
}

func newUploadCommand() *cobra.Command {
	var folder string
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an image and print its URL",
		Args:  cobra.ExactArgs(1),
		RunE: adminRun(func(cmd *cobra.Command, s *content.Store, args []string) error {
			url, err := uploadFile(cmd.Context(), s, args[0], folder)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		}),
	}
	cmd.Flags().StringVar(&folder, "folder", "general", "destination folder")
	return cmd
}

func uploadFile(ctx context.Context, s *content.Store, path, folder string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return s.UploadImage(ctx, data, filepath.Base(path), folder)
}

func printNews(cmd *cobra.Command, news []models.NewsItem) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tCATEGORY\tTITLE")
	for _, n := range news {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", n.ID, n.Date, n.Category, n.Title)
	}
	return tw.Flush()
}

func printTickets(cmd *cobra.Command, tickets []models.SupportTicket) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tNAME\tEMAIL\tSUBJECT")
	for _, t := range tickets {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", t.ID, t.Created().Format(time.DateTime), t.Name, t.Email, t.Subject)
	}
	return tw.Flush()
}

func newTicketCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Public support desk",
	}
	cmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "content server URL (default $API_URL)")

	var draft models.TicketDraft
	submit := &cobra.Command{
		Use:   "submit",
		Short: "Send a support ticket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openContent(cmd.Context())
			if err != nil {
				return err
			}
			ticket, err := s.AddTicket(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ticket %d received\n", ticket.ID)
			return nil
		},
	}
	submit.Flags().StringVar(&draft.Name, "name", "", "your name")
	submit.Flags().StringVar(&draft.Email, "email", "", "reply address")
	submit.Flags().StringVar(&draft.Subject, "subject", "", "subject line")
	submit.Flags().StringVar(&draft.Message, "message", "", "message body")
	for _, name := range []string{"name", "email", "subject", "message"} {
		submit.MarkFlagRequired(name)
	}

	cmd.AddCommand(submit)
	return cmd
}
