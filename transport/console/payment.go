package console

import (
	"hotel/internal/domains/payment/model"
	"hotel/internal/domains/payment/model/dto"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"

	"github.com/spf13/cobra"
)

func (c *Console) paymentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Quote, record and list payments",
	}

	cmd.AddCommand(
		c.paymentQuoteCmd(),
		c.paymentRecordCmd(),
		c.paymentListCmd(),
	)

	return cmd
}

func (c *Console) paymentQuoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote <booking-id>",
		Short: "Show what a booking costs without recording anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, scope := c.context(cmd, "payment.quote")
			defer scope.End()

			charge, err := c.services.Payment.Quote(ctx, args[0])
			if err != nil {
				scope.TraceError(err)
				return err
			}

			return c.print(charge)
		},
	}
}

func (c *Console) paymentRecordCmd() *cobra.Command {
	var req dto.RecordPaymentRequest

	cmd := &cobra.Command{
		Use:   "record <booking-id>",
		Short: "Record the payment of an active booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, scope := c.context(cmd, "payment.record")
			defer scope.End()

			req.BookingID = args[0]

			if err := validator.ValidateStruct(&req); err != nil {
				scope.TraceError(err)
				return err
			}

			payment, err := c.services.Payment.Record(ctx, req)
			if err != nil {
				scope.TraceError(err)
				return err
			}

			return c.print(payment)
		},
	}

	cmd.Flags().StringVar(&req.Method, "method", "cash", "cash or card")

	return cmd
}

func (c *Console) paymentListCmd() *cobra.Command {
	var (
		params    gDto.QueryParams
		bookingID string
		method    string
		unpaid    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments, or active bookings still waiting for one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, scope := c.context(cmd, "payment.list")
			defer scope.End()

			if unpaid {
				bookings, err := c.services.Payment.Unpaid(ctx, params)
				if err != nil {
					scope.TraceError(err)
					return err
				}

				return c.print(bookings)
			}

			filterGroup := gDto.FilterGroup{}
			eqFilter(&filterGroup, model.TableName, model.FieldBookingID, bookingID)
			eqFilter(&filterGroup, model.TableName, model.FieldMethod, method)

			params.RestrictSort(model.TableName, model.FieldPaidOn, model.FieldAmount)

			payments, err := c.services.Payment.GetAll(ctx, params, filterGroup)
			if err != nil {
				scope.TraceError(err)
				return err
			}

			return c.print(payments)
		},
	}

	addPagingFlags(cmd, &params)
	cmd.Flags().StringVar(&bookingID, "booking", "", "only the payment of this booking")
	cmd.Flags().StringVar(&method, "method", "", "only payments made with this method")
	cmd.Flags().BoolVar(&unpaid, "unpaid", false, "list active bookings without a payment instead")

	return cmd
}
