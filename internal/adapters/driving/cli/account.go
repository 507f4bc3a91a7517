package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

var (
	loginEmail  string
	signupEmail string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your account",
	RunE:  runLogin,
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new account",
	Long: `Registers a new account. The provider sends a verification email; you
can sign in once the address is verified.`,
	RunE: runSignup,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE:  runWhoami,
}

var resendVerifyCmd = &cobra.Command{
	Use:   "resend-verification [email]",
	Short: "Resend the verification email",
	Args:  cobra.ExactArgs(1),
	RunE:  runResendVerification,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email (prompted when omitted)")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "account email (prompted when omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(resendVerifyCmd)
}

// promptCredentials collects the email (unless given) and password.
func promptCredentials(cmd *cobra.Command, email string) (string, string, error) {
	reader := bufio.NewReader(os.Stdin)

	if email == "" {
		cmd.Print("Email: ")
		email = readLine(reader)
	}
	if email == "" {
		return "", "", fmt.Errorf("email is required: %w", domain.ErrInvalidInput)
	}

	cmd.Print("Password: ")
	password := readPassword()
	cmd.Println()
	if password == "" {
		return "", "", fmt.Errorf("password is required: %w", domain.ErrInvalidInput)
	}

	return email, password, nil
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	email, password, err := promptCredentials(cmd, loginEmail)
	if err != nil {
		return err
	}

	session, err := sessionService.SignIn(context.Background(), email, password)
	if err != nil {
		var authErr *domain.AuthError
		if errors.As(err, &authErr) {
			return fmt.Errorf("sign-in failed: %s", authErr.Message)
		}
		return fmt.Errorf("sign-in failed: %w", err)
	}

	cmd.Printf("Signed in as %s\n", session.User.Email)
	if !session.User.EmailVerified {
		cmd.Println("Note: your email address is not verified yet.")
		cmd.Printf("Run 'dailybrief resend-verification %s' to get a new email.\n", session.User.Email)
	}
	return nil
}

func runSignup(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	email, password, err := promptCredentials(cmd, signupEmail)
	if err != nil {
		return err
	}

	if err := sessionService.SignUp(context.Background(), email, password); err != nil {
		var authErr *domain.AuthError
		if errors.As(err, &authErr) {
			return fmt.Errorf("sign-up failed: %s", authErr.Message)
		}
		return fmt.Errorf("sign-up failed: %w", err)
	}

	cmd.Printf("Account created for %s\n", email)
	cmd.Println("Check your inbox for a verification email, then run 'dailybrief login'.")
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	if err := sessionService.SignOut(context.Background()); err != nil {
		return fmt.Errorf("sign-out failed: %w", err)
	}

	cmd.Println("Signed out.")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	session, err := sessionService.Current(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			cmd.Println("Not signed in.")
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	cmd.Printf("Signed in as %s\n", session.User.Email)
	if session.User.DisplayName != "" {
		cmd.Printf("  Name: %s\n", session.User.DisplayName)
	}
	cmd.Printf("  Verified: %t\n", session.User.EmailVerified)
	return nil
}

func runResendVerification(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	email := args[0]
	if err := sessionService.ResendVerificationEmail(context.Background(), email); err != nil {
		var authErr *domain.AuthError
		if errors.As(err, &authErr) {
			return fmt.Errorf("resend failed: %s", authErr.Message)
		}
		return fmt.Errorf("resend failed: %w", err)
	}

	cmd.Printf("Verification email sent to %s\n", email)
	return nil
}
