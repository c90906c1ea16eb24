package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	signInEmail    string
	signInPassword string
)

var signInCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in to the remote store",
	Long:  `Signin authenticates with the remote store and prints the issued access
token. Pass the token to later invocations via --token or the
REMOTE_ACCESS_TOKEN environment variable.`,
	RunE: runSignIn,
}

func init() {
	signInCmd.Flags().StringVar(&signInEmail, "email", "", "account email (required)")
	signInCmd.Flags().StringVar(&signInPassword, "password", "", "account password (required)")
	_ = signInCmd.MarkFlagRequired("email")
	_ = signInCmd.MarkFlagRequired("password")
}

func runSignIn(cmd *cobra.Command, args []string) error {
	ctx := appContext(cmd)

	session, err := app.Remote.SignIn(ctx, signInEmail, signInPassword)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	fmt.Printf("Signed in as %s", session.Email)
	if session.MadrasaName != "" {
		fmt.Printf(" (%s)", session.MadrasaName)
	}
	fmt.Println()
	fmt.Println(session.AccessToken)
	return nil
}
