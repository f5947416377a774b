package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/punyakios/go-kios-client/cmd/setup"
	"github.com/punyakios/go-kios-client/internal/models"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the signed in user, refreshing or updating it when asked",
	Args:  cobra.NoArgs,
	RunE: withSetup(func(ctx context.Context, ccmd *cobra.Command, s *setup.Setup, _ []string) error {
		req, changed, err := updateProfileFromFlags(ccmd)
		if err != nil {
			return err
		}

		if changed {
			profile, err := s.Service.Profile.Update(ctx, req)
			if err != nil {
				return err
			}
			return printJSON(ccmd, profile)
		}

		if refresh, _ := ccmd.Flags().GetBool(flagRefresh); refresh {
			profile, err := s.Service.Profile.Refresh(ctx)
			if err != nil {
				return err
			}
			return printJSON(ccmd, profile)
		}

		profile, ok, err := s.Service.Profile.Cached(ctx)
		if err != nil {
			return err
		}
		if !ok {
			ccmd.PrintErrln("no profile stored, run with --refresh")
			return nil
		}
		return printJSON(ccmd, profile)
	}),
}

var depositCmd = &cobra.Command{
	Use:   "deposit <amount>",
	Short: "Request a balance deposit",
	Args:  cobra.ExactArgs(1),
	RunE: withSetup(func(ctx context.Context, ccmd *cobra.Command, s *setup.Setup, args []string) error {
		amount, err := models.NewDecimal(args[0])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[0], err)
		}

		body, err := s.Service.Deposit.Create(ctx, models.DepositRequest{Amount: amount})
		if err != nil {
			return err
		}
		return printJSON(ccmd, body)
	}),
}

var versionCheckCmd = &cobra.Command{
	Use:   "version-check",
	Short: "Compare the configured app version with the server minimum",
	Args:  cobra.NoArgs,
	RunE: withSetup(func(ctx context.Context, ccmd *cobra.Command, s *setup.Setup, _ []string) error {
		result, needsUpdate, err := s.Service.AppConfig.CheckVersion(ctx)
		if err != nil {
			return err
		}
		return printJSON(ccmd, struct {
			models.VersionCheck
			CurrentVersion string `json:"current_version"`
			NeedsUpdate    bool   `json:"needs_update"`
		}{result, s.Config.App.Version, needsUpdate})
	}),
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage the locally stored session",
}

var sessionTokenCmd = &cobra.Command{
	Use:   "token <value>",
	Short: "Store the bearer token sent with every API call",
	Args:  cobra.ExactArgs(1),
	RunE: withSetup(func(ctx context.Context, ccmd *cobra.Command, s *setup.Setup, args []string) error {
		if err := s.Session.SetToken(ctx, args[0]); err != nil {
			return err
		}
		ccmd.Println("token stored")
		return nil
	}),
}

var sessionBiometricCmd = &cobra.Command{
	Use:       "biometric <on|off>",
	Short:     "Turn the biometric check of transactions on or off",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: withSetup(func(ctx context.Context, ccmd *cobra.Command, s *setup.Setup, args []string) error {
		enabled, err := parseSwitch(args[0])
		if err != nil {
			return err
		}
		if err = s.Service.Profile.SetBiometricEnabled(ctx, enabled); err != nil {
			return err
		}
		ccmd.Printf("biometric check %s\n", args[0])
		return nil
	}),
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Sign out, keeping the biometric preference",
	Args:  cobra.NoArgs,
	RunE: withSetup(func(ctx context.Context, ccmd *cobra.Command, s *setup.Setup, _ []string) error {
		if err := s.Service.Profile.SignOut(ctx); err != nil {
			return err
		}
		ccmd.Println("session cleared")
		return nil
	}),
}

func updateProfileFromFlags(ccmd *cobra.Command) (req models.UpdateProfileRequest, changed bool, err error) {
	flags := ccmd.Flags()
	if flags.Changed("name") {
		req.Name, _ = flags.GetString("name")
		changed = true
	}
	if flags.Changed("email") {
		req.Email, _ = flags.GetString("email")
		changed = true
	}
	if flags.Changed("phone") {
		req.Phone, _ = flags.GetString("phone")
		changed = true
	}
	if flags.Changed("biometric") {
		value, _ := flags.GetString("biometric")
		enabled, err := parseSwitch(value)
		if err != nil {
			return req, false, err
		}
		req.BiometricEnabled = &enabled
		changed = true
	}
	return req, changed, nil
}

func parseSwitch(value string) (bool, error) {
	switch value {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("expected on or off, got %q", value)
		}
		return enabled, nil
	}
}

func init() {
	profileCmd.Flags().Bool(flagRefresh, false, "fetch the profile from the API")
	profileCmd.Flags().String("name", "", "new display name")
	profileCmd.Flags().String("email", "", "new email address")
	profileCmd.Flags().String("phone", "", "new phone number")
	profileCmd.Flags().String("biometric", "", "on or off")

	sessionCmd.AddCommand(sessionTokenCmd, sessionBiometricCmd, sessionClearCmd)
	rootCmd.AddCommand(profileCmd, depositCmd, versionCheckCmd, sessionCmd)
}
