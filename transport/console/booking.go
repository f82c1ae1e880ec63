package console

import (
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	guestModel "hotel/internal/domains/guest/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"

	"github.com/spf13/cobra"
)

func (c *Console) bookingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booking",
		Short: "Create, change and list bookings",
	}

	cmd.AddCommand(
		c.bookingCreateCmd(),
		c.bookingUpdateCmd(),
		c.bookingCancelCmd(),
		c.bookingListCmd(),
		c.bookingAvailabilityCmd(),
	)

	return cmd
}

func (c *Console) bookingCreateCmd() *cobra.Command {
	var req dto.CreateBookingRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book a room for a guest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, scope := c.context(cmd, "booking.create")
			defer scope.End()

			if err := validator.ValidateStruct(&req); err != nil {
				scope.TraceError(err)
				return err
			}

			booking, err := c.services.Booking.Create(ctx, req)
			if err != nil {
				scope.TraceError(err)
				return err
			}

			return c.print(booking)
		},
	}

	cmd.Flags().StringVar(&req.GuestID, "guest", "", "guest id")
	cmd.Flags().StringVar(&req.RoomID, "room", "", "room id")
	cmd.Flags().StringVar(&req.CheckIn, "check-in", "", "arrival day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.CheckOut, "check-out", "", "departure day (YYYY-MM-DD)")

	for _, flag := range []string{"guest", "room", "check-in", "check-out"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

func (c *Console) bookingUpdateCmd() *cobra.Command {
	var req dto.UpdateBookingRequest

	cmd := &cobra.Command{
		Use:   "update <booking-id>",
		Short: "Change the status or dates of a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, scope := c.context(cmd, "booking.update")
			defer scope.End()

			if err := validator.ValidateStruct(&req); err != nil {
				scope.TraceError(err)
				return err
			}

			if err := c.services.Booking.Update(ctx, req, args[0]); err != nil {
				scope.TraceError(err)
				return err
			}

			c.message("booking %s updated", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&req.Status, "status", "", "active, cancelled or completed")
	cmd.Flags().StringVar(&req.CheckIn, "check-in", "", "new arrival day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.CheckOut, "check-out", "", "new departure day (YYYY-MM-DD)")

	return cmd
}

func (c *Console) bookingCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <booking-id>",
		Short: "Cancel an active booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, scope := c.context(cmd, "booking.cancel")
			defer scope.End()

			if err := c.services.Booking.Cancel(ctx, args[0]); err != nil {
				scope.TraceError(err)
				return err
			}

			c.message("booking %s cancelled", args[0])

			return nil
		},
	}
}

func (c *Console) bookingListCmd() *cobra.Command {
	var (
		params          gDto.QueryParams
		roomID, guestID string
		status, keyword string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, scope := c.context(cmd, "booking.list")
			defer scope.End()

			filterGroup := gDto.FilterGroup{}

			if keyword != "" {
				filterGroup.Filters = append(filterGroup.Filters, shared.FilterByKeyword(keyword, guestModel.TableName, guestModel.FieldName))
			}

			eqFilter(&filterGroup, model.TableName, model.FieldRoomID, roomID)
			eqFilter(&filterGroup, model.TableName, model.FieldGuestID, guestID)
			eqFilter(&filterGroup, model.TableName, model.FieldStatus, status)

			params.RestrictSort(model.TableName, model.FieldCheckIn, model.FieldCheckOut, model.FieldStatus)

			bookings, err := c.services.Booking.GetAll(ctx, params, filterGroup)
			if err != nil {
				scope.TraceError(err)
				return err
			}

			return c.print(bookings)
		},
	}

	addPagingFlags(cmd, &params)
	cmd.Flags().StringVar(&roomID, "room", "", "only bookings of this room")
	cmd.Flags().StringVar(&guestID, "guest", "", "only bookings of this guest")
	cmd.Flags().StringVar(&status, "status", "", "only bookings in this status")
	cmd.Flags().StringVar(&keyword, "keyword", "", "match the guest name")

	return cmd
}

func (c *Console) bookingAvailabilityCmd() *cobra.Command {
	var req dto.AvailabilityRequest

	cmd := &cobra.Command{
		Use:   "availability <room-id>",
		Short: "Check whether a room can take another booking for a stay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, scope := c.context(cmd, "booking.availability")
			defer scope.End()

			if err := validator.ValidateStruct(&req); err != nil {
				scope.TraceError(err)
				return err
			}

			availability, err := c.services.Booking.Availability(ctx, args[0], req)
			if err != nil {
				scope.TraceError(err)
				return err
			}

			return c.print(availability)
		},
	}

	cmd.Flags().StringVar(&req.CheckIn, "check-in", "", "arrival day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.CheckOut, "check-out", "", "departure day (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("check-in")
	_ = cmd.MarkFlagRequired("check-out")

	return cmd
}
