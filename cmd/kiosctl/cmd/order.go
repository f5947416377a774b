package cmd

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/punyakios/go-kios-client/cmd/setup"
	"github.com/punyakios/go-kios-client/internal/models"
)

var errInvalidData = errors.New("--data must be a JSON object")

var topupCmd = &cobra.Command{
	Use:   "topup",
	Short: "Buy a prepaid product",
	Args:  cobra.NoArgs,
	RunE: withSetup(func(ctx context.Context, ccmd *cobra.Command, s *setup.Setup, _ []string) error {
		sku, _ := ccmd.Flags().GetString("sku")
		customer, _ := ccmd.Flags().GetString("customer")
		provider, _ := ccmd.Flags().GetString("provider")

		body, err := s.Service.Order.Topup(ctx, models.TopupRequest{SKU: sku, Customer: customer, Provider: provider})
		if err != nil {
			return err
		}
		return printJSON(ccmd, body)
	}),
}

var checkBillCmd = &cobra.Command{
	Use:   "check-bill",
	Short: "Inquire the outstanding bill of a customer",
	Args:  cobra.NoArgs,
	RunE: withSetup(func(ctx context.Context, ccmd *cobra.Command, s *setup.Setup, _ []string) error {
		body, err := s.Service.Order.CheckBill(ctx, billRequestFromFlags(ccmd))
		if err != nil {
			return err
		}
		return printJSON(ccmd, body)
	}),
}

var payBillCmd = &cobra.Command{
	Use:   "pay-bill",
	Short: "Pay a bill returned by check-bill",
	Args:  cobra.NoArgs,
	RunE: withSetup(func(ctx context.Context, ccmd *cobra.Command, s *setup.Setup, _ []string) error {
		body, err := s.Service.Order.PayBill(ctx, billRequestFromFlags(ccmd))
		if err != nil {
			return err
		}
		return printJSON(ccmd, body)
	}),
}

var payCmd = &cobra.Command{
	Use:   "pay <service>",
	Short: "Send a payment to /api/payment/<service>",
	Args:  cobra.ExactArgs(1),
	RunE: withSetup(func(ctx context.Context, ccmd *cobra.Command, s *setup.Setup, args []string) error {
		data, _ := ccmd.Flags().GetString("data")
		payload, err := jsonObject(data)
		if err != nil {
			return err
		}

		body, err := s.Service.Order.Pay(ctx, args[0], payload)
		if err != nil {
			return err
		}
		return printJSON(ccmd, body)
	}),
}

func billRequestFromFlags(ccmd *cobra.Command) models.BillRequest {
	sku, _ := ccmd.Flags().GetString("sku")
	customer, _ := ccmd.Flags().GetString("customer")
	ref, _ := ccmd.Flags().GetString("ref")
	return models.BillRequest{SKU: sku, Customer: customer, RefID: ref}
}

func jsonObject(data string) (json.RawMessage, error) {
	if data == "" {
		return json.RawMessage("{}"), nil
	}
	if !gjson.Valid(data) || !gjson.Parse(data).IsObject() {
		return nil, errInvalidData
	}
	return json.RawMessage(data), nil
}

func init() {
	for _, c := range []*cobra.Command{topupCmd, checkBillCmd, payBillCmd} {
		c.Flags().String("sku", "", "product code")
		c.Flags().String("customer", "", "customer number")
		_ = c.MarkFlagRequired("sku")
		_ = c.MarkFlagRequired("customer")
	}
	topupCmd.Flags().String("provider", "", "provider of the product")
	checkBillCmd.Flags().String("ref", "", "reference id")
	payBillCmd.Flags().String("ref", "", "reference id returned by check-bill")
	payCmd.Flags().String("data", "", "payment payload as a JSON object")

	rootCmd.AddCommand(topupCmd, checkBillCmd, payBillCmd, payCmd)
}
