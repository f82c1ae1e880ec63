package console

import (
	amenityModel "hotel/internal/domains/amenity/model"
	amenityDto "hotel/internal/domains/amenity/model/dto"
	guestModel "hotel/internal/domains/guest/model"
	guestDto "hotel/internal/domains/guest/model/dto"
	guestServiceDto "hotel/internal/domains/guestservice/model/dto"
	roomModel "hotel/internal/domains/room/model"
	roomDto "hotel/internal/domains/room/model/dto"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	roomTypeDto "hotel/internal/domains/roomtype/model/dto"
	"hotel/shared"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"

	"github.com/spf13/cobra"
)

func (c *Console) guestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guest",
		Short: "Register and find guests",
	}

	cmd.AddCommand(c.guestAddCmd(), c.guestListCmd(), c.guestSearchCmd())

	return cmd
}

func (c *Console) guestAddCmd() *cobra.Command {
	var req guestDto.CreateGuestRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a guest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, scope := c.context(cmd, "guest.add")
			defer scope.End()

			if err := validator.ValidateStruct(&req); err != nil {
				scope.TraceError(err)
				return err
			}

			guest, err := c.services.Guest.Create(ctx, req)
			if err != nil {
				scope.TraceError(err)
				return err
			}

			return c.print(guest)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().IntVar(&req.Age, "age", 0, "age in years")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Passport, "passport", "", "passport number")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (c *Console) guestListCmd() *cobra.Command {
	var params gDto.QueryParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List guests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.listGuests(cmd, params, "")
		},
	}

	addPagingFlags(cmd, &params)

	return cmd
}

func (c *Console) guestSearchCmd() *cobra.Command {
	var params gDto.QueryParams

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Find guests by name, email, phone or passport",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.listGuests(cmd, params, args[0])
		},
	}

	addPagingFlags(cmd, &params)

	return cmd
}

func (c *Console) listGuests(cmd *cobra.Command, params gDto.QueryParams, keyword string) error {
	ctx, scope := c.context(cmd, "guest.list")
	defer scope.End()

	params.RestrictSort(guestModel.TableName, guestModel.FieldName, guestModel.FieldAge)

	filterGroup := gDto.FilterGroup{}
	if keyword != "" {
		filterGroup.Filters = append(filterGroup.Filters, shared.FilterByKeyword(keyword, guestModel.TableName,
			guestModel.FieldName, guestModel.FieldEmail, guestModel.FieldPhone, guestModel.FieldPassport))
	}

	guests, err := c.services.Guest.GetAll(ctx, params, filterGroup)
	if err != nil {
		scope.TraceError(err)
		return err
	}

	return c.print(guests)
}

func (c *Console) roomTypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room-type",
		Short: "Manage room types",
	}

	cmd.AddCommand(c.roomTypeAddCmd(), c.roomTypeListCmd())

	return cmd
}

func (c *Console) roomTypeAddCmd() *cobra.Command {
	var req roomTypeDto.CreateRoomTypeRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a room type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, scope := c.context(cmd, "room-type.add")
			defer scope.End()

			if err := validator.ValidateStruct(&req); err != nil {
				scope.TraceError(err)
				return err
			}

			roomType, err := c.services.RoomType.Create(ctx, req)
			if err != nil {
				scope.TraceError(err)
				return err
			}

			return c.print(roomType)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "type name")
	cmd.Flags().Float64Var(&req.Price, "price", 0, "nightly price")
	cmd.Flags().IntVar(&req.MaxGuests, "max-guests", 1, "bookings a room of this type holds at once")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func (c *Console) roomTypeListCmd() *cobra.Command {
	var params gDto.QueryParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List room types",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, scope := c.context(cmd, "room-type.list")
			defer scope.End()

			params.RestrictSort(roomTypeModel.TableName, roomTypeModel.FieldName, roomTypeModel.FieldPrice, roomTypeModel.FieldMaxGuests)

			roomTypes, err := c.services.RoomType.GetAll(ctx, params, gDto.FilterGroup{})
			if err != nil {
				scope.TraceError(err)
				return err
			}

			return c.print(roomTypes)
		},
	}

	addPagingFlags(cmd, &params)

	return cmd
}

func (c *Console) roomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Manage rooms",
	}

	cmd.AddCommand(c.roomAddCmd(), c.roomListCmd())

	return cmd
}

func (c *Console) roomAddCmd() *cobra.Command {
	var req roomDto.CreateRoomRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a room of an existing type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, scope := c.context(cmd, "room.add")
			defer scope.End()

			if err := validator.ValidateStruct(&req); err != nil {
				scope.TraceError(err)
				return err
			}

			room, err := c.services.Room.Create(ctx, req)
			if err != nil {
				scope.TraceError(err)
				return err
			}

			return c.print(room)
		},
	}

	cmd.Flags().StringVar(&req.Number, "number", "", "room number")
	cmd.Flags().StringVar(&req.RoomTypeID, "type", "", "room type id")
	cmd.Flags().StringVar(&req.Status, "status", "", "free, occupied or under_maintenance")
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func (c *Console) roomListCmd() *cobra.Command {
	var (
		params     gDto.QueryParams
		status     string
		roomTypeID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rooms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, scope := c.context(cmd, "room.list")
			defer scope.End()

			params.RestrictSort(roomModel.TableName, roomModel.FieldNumber, roomModel.FieldStatus, roomModel.FieldPrice)

			filterGroup := gDto.FilterGroup{}
			eqFilter(&filterGroup, roomModel.TableName, roomModel.FieldStatus, status)
			eqFilter(&filterGroup, roomModel.TableName, roomModel.FieldRoomTypeID, roomTypeID)

			rooms, err := c.services.Room.GetAll(ctx, params, filterGroup)
			if err != nil {
				scope.TraceError(err)
				return err
			}

			return c.print(rooms)
		},
	}

	addPagingFlags(cmd, &params)
	cmd.Flags().StringVar(&status, "status", "", "only rooms in this status")
	cmd.Flags().StringVar(&roomTypeID, "type", "", "only rooms of this type")

	return cmd
}

func (c *Console) serviceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Manage billable services",
	}

	cmd.AddCommand(c.serviceAddCmd(), c.serviceListCmd())

	return cmd
}

func (c *Console) serviceAddCmd() *cobra.Command {
	var req amenityDto.CreateAmenityRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a service guests can be charged for",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, scope := c.context(cmd, "service.add")
			defer scope.End()

			if err := validator.ValidateStruct(&req); err != nil {
				scope.TraceError(err)
				return err
			}

			amenity, err := c.services.Amenity.Create(ctx, req)
			if err != nil {
				scope.TraceError(err)
				return err
			}

			return c.print(amenity)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "service name")
	cmd.Flags().Float64Var(&req.Price, "price", 0, "price per use")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (c *Console) serviceListCmd() *cobra.Command {
	var params gDto.QueryParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List services",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, scope := c.context(cmd, "service.list")
			defer scope.End()

			params.RestrictSort(amenityModel.TableName, amenityModel.FieldName, amenityModel.FieldPrice)

			amenities, err := c.services.Amenity.GetAll(ctx, params, gDto.FilterGroup{})
			if err != nil {
				scope.TraceError(err)
				return err
			}

			return c.print(amenities)
		},
	}

	addPagingFlags(cmd, &params)

	return cmd
}

func (c *Console) guestServiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guest-service",
		Short: "Record services used by guests",
	}

	cmd.AddCommand(c.guestServiceAddCmd())

	return cmd
}

func (c *Console) guestServiceAddCmd() *cobra.Command {
	var req guestServiceDto.CreateGuestServiceRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record that a guest used a service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, scope := c.context(cmd, "guest-service.add")
			defer scope.End()

			if err := validator.ValidateStruct(&req); err != nil {
				scope.TraceError(err)
				return err
			}

			usage, err := c.services.GuestService.Create(ctx, req)
			if err != nil {
				scope.TraceError(err)
				return err
			}

			return c.print(usage)
		},
	}

	cmd.Flags().StringVar(&req.GuestID, "guest", "", "guest id")
	cmd.Flags().StringVar(&req.ServiceID, "service", "", "service id")
	cmd.Flags().StringVar(&req.UsedOn, "used-on", "", "day of use (YYYY-MM-DD), today when empty")
	_ = cmd.MarkFlagRequired("guest")
	_ = cmd.MarkFlagRequired("service")

	return cmd
}
