package guestcli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	envAPIURL    = "CONCIERGE_API_URL"
	envAPIKey    = "CONCIERGE_API_KEY"
	envStorePath = "CONCIERGE_GUEST_DB"

	defaultAPIURL = "http://localhost:8080"
)

// Options wires the command tree to its environment.
type Options struct {
	In  io.Reader
	Out io.Writer
	// ReadPassword reads a secret without echo. Defaults to the terminal.
	ReadPassword func() (string, error)
}

type cli struct {
	opts      Options
	apiURL    string
	apiKey    string
	storePath string
	jsonOut   bool
	store     *Store
	app       *App
}

func NewRootCommand(opts Options) *cobra.Command {
	if opts.In == nil {
		opts.In = os.Stdin
	}

	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.ReadPassword == nil {
		opts.ReadPassword = terminalPassword
	}

	c := &cli{opts: opts}

	root := &cobra.Command{
		Use:           "guest",
		Short:         "Hotel concierge from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return c.close()
		},
	}

	root.SetIn(opts.In)
	root.SetOut(opts.Out)

	root.PersistentFlags().StringVar(&c.apiURL, "api-url", envOr(envAPIURL, defaultAPIURL), "Concierge API base URL (default: $"+envAPIURL+")")
	root.PersistentFlags().StringVar(&c.apiKey, "api-key", os.Getenv(envAPIKey), "Kiosk API key (default: $"+envAPIKey+")")
	root.PersistentFlags().StringVar(&c.storePath, "db", os.Getenv(envStorePath), "Local cache file (default: $"+envStorePath+" or the user config dir)")
	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "Output JSON")

	root.AddCommand(c.loginCmd())
	root.AddCommand(c.logoutCmd())
	root.AddCommand(c.identityCmd())
	root.AddCommand(c.requestCmd())
	root.AddCommand(c.chatCmd())

	return root
}

func (c *cli) open() error {
	path := c.storePath
	if path == "" {
		var err error

		if path, err = DefaultStorePath(); err != nil {
			return err
		}
	}

	store, err := OpenStore(path)
	if err != nil {
		return err
	}

	client := NewClient(c.apiURL)
	client.APIKey = c.apiKey

	c.store = store
	c.app = NewApp(store, client)

	return nil
}

func (c *cli) close() error {
	if c.store == nil {
		return nil
	}

	return c.store.Close()
}

func (c *cli) loginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with your guest account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if email == "" {
				fmt.Fprint(c.opts.Out, "Email: ")

				line, err := bufio.NewReader(c.opts.In).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read email: %w", err)
				}

				email = strings.TrimSpace(line)
			}

			fmt.Fprint(c.opts.Out, "Password: ")

			password, err := c.opts.ReadPassword()
			fmt.Fprintln(c.opts.Out)

			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}

			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}

			session, err := c.app.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.opts.Out, "Logged in as %s.\n", session.Email)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")

	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the login session (the cached identity stays)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Logout(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(c.opts.Out, "Logged out.")

			return nil
		},
	}
}

func (c *cli) identityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Manage the name and room remembered on this device",
	}

	var identity Identity

	set := &cobra.Command{
		Use:   "set",
		Short: "Remember your name and room",
		RunE: func(*cobra.Command, []string) error {
			if err := c.app.SetIdentity(identity); err != nil {
				return err
			}

			fmt.Fprintln(c.opts.Out, "Identity saved.")

			return nil
		},
	}

	set.Flags().StringVar(&identity.GuestName, "name", "", "Guest name")
	set.Flags().StringVar(&identity.RoomNumber, "room", "", "Room number")
	set.Flags().StringVar(&identity.UserID, "user-id", "", "Guest user id (kiosk use)")

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the remembered identity",
		RunE: func(*cobra.Command, []string) error {
			cached, err := c.app.Identity()
			if err != nil {
				return err
			}

			if cached == nil {
				fmt.Fprintln(c.opts.Out, "No identity cached.")

				return nil
			}

			if c.jsonOut {
				return c.writeJSON(cached)
			}

			fmt.Fprintf(c.opts.Out, "Name:    %s\nRoom:    %s\nUser ID: %s\n", orDash(cached.GuestName), orDash(cached.RoomNumber), orDash(cached.UserID))

			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget the remembered identity",
		RunE: func(*cobra.Command, []string) error {
			if err := c.app.ClearIdentity(); err != nil {
				return err
			}

			fmt.Fprintln(c.opts.Out, "Identity cleared.")

			return nil
		},
	}

	cmd.AddCommand(set, show, clearCmd)

	return cmd
}

func (c *cli) requestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Ask the front desk for something",
	}

	var kind, categoryID string

	submit := &cobra.Command{
		Use:   "submit <description>",
		Short: "Submit a service request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.SubmitRequest(cmd.Context(), strings.Join(args, " "), kind, categoryID)
			if err != nil {
				return err
			}

			if c.jsonOut {
				return c.writeJSON(res)
			}

			fmt.Fprintln(c.opts.Out, res.Message)
			fmt.Fprintf(c.opts.Out, "Room %s, %s\n", res.RoomNumber, res.GuestName)

			return nil
		},
	}

	submit.Flags().StringVar(&kind, "type", "general", "Request type")
	submit.Flags().StringVar(&categoryID, "category", "", "Request category id")

	cmd.AddCommand(submit)

	return cmd
}

func (c *cli) chatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Read and write your front desk conversation",
	}

	var page, limit int

	list := &cobra.Command{
		Use:   "list",
		Short: "Show your messages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.app.Messages(cmd.Context(), page, limit)
			if err != nil {
				return err
			}

			if c.jsonOut {
				return c.writeJSON(res)
			}

			if len(res.Messages) == 0 {
				fmt.Fprintln(c.opts.Out, "No messages yet.")

				return nil
			}

			for _, msg := range res.Messages {
				fmt.Fprintf(c.opts.Out, "[%s] %s: %s\n", msg.CreatedAt, msg.Sender, msg.Text)
			}

			return nil
		},
	}

	list.Flags().IntVar(&page, "page", 1, "Page")
	list.Flags().IntVar(&limit, "limit", 20, "Messages per page")

	send := &cobra.Command{
		Use:   "send <text>",
		Short: "Send a message to the front desk",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := c.app.SendMessage(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			if c.jsonOut {
				return c.writeJSON(msg)
			}

			fmt.Fprintln(c.opts.Out, "Message sent.")

			return nil
		},
	}

	cmd.AddCommand(list, send)

	return cmd
}

func (c *cli) writeJSON(v any) error {
	encoder := json.NewEncoder(c.opts.Out)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

func terminalPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}

		return strings.TrimSpace(line), nil
	}

	secret, err := term.ReadPassword(fd)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(secret)), nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}

	return value
}
