package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"ai-marketing-backend/internal/form"

	"github.com/spf13/cobra"
)

var (
	endpoint string
	fields   form.Fields
)

var rootCmd = &cobra.Command{
	Use:           "contact",
	Short:         "Contact form client for the AI Marketing Partners API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// submitCmd fills the form from flags and submits it once
var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit the contact form",
	Long: `Submit the contact form to the site API.

Required: --first-name, --last-name, --email, --message.
Pass --message - to read the message body from stdin.`,
	RunE: runSubmit,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", envOr("CONTACT_API_URL", "http://localhost:8080/api/contact"), "contact endpoint URL")

	submitCmd.Flags().StringVar(&fields.FirstName, "first-name", "", "first name")
	submitCmd.Flags().StringVar(&fields.LastName, "last-name", "", "last name")
	submitCmd.Flags().StringVar(&fields.Email, "email", "", "email address")
	submitCmd.Flags().StringVar(&fields.Company, "company", "", "company (optional)")
	submitCmd.Flags().StringVar(&fields.Phone, "phone", "", "phone (optional)")
	submitCmd.Flags().StringVar(&fields.Message, "message", "", "message, or - for stdin")

	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	if fields.Message == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read message from stdin: %w", err)
		}
		fields.Message = strings.TrimRight(string(b), "\n")
	}

	out := cmd.OutOrStdout()
	c := form.New(endpoint, form.WithObserver(func(s form.Snapshot) {
		if s.State == form.Submitting {
			fmt.Fprintln(out, "Sending...")
		}
	}))
	if err := c.SetFields(fields); err != nil {
		return err
	}

	snap, err := c.Submit(cmd.Context())
	if err != nil {
		return err
	}

	if snap.Status == form.StatusError {
		return errors.New(snap.Message)
	}
	fmt.Fprintln(out, snap.Message)
	return nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
