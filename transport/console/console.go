package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"hotel/infras/otel"
	amenityService "hotel/internal/domains/amenity/service"
	bookingService "hotel/internal/domains/booking/service"
	guestService "hotel/internal/domains/guest/service"
	guestServiceService "hotel/internal/domains/guestservice/service"
	paymentService "hotel/internal/domains/payment/service"
	roomService "hotel/internal/domains/room/service"
	roomTypeService "hotel/internal/domains/roomtype/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	flagOperator = "operator"
	flagPage     = "page"
	flagLimit    = "limit"
	flagSortBy   = "sort-by"
	flagSortDir  = "sort-dir"
)

// Services groups what the console drives. Commands only reach the domain through these.
type Services struct {
	Booking      bookingService.Booking
	Payment      paymentService.Payment
	Guest        guestService.Guest
	RoomType     roomTypeService.RoomType
	Room         roomService.Room
	Amenity      amenityService.Amenity
	GuestService guestServiceService.GuestService
}

type Console struct {
	services Services
	otel     otel.Otel
	out      io.Writer
	operator string
}

func New(services Services, otel otel.Otel) *Console {
	return &Console{
		services: services,
		otel:     otel,
		out:      os.Stdout,
		operator: constant.OperatorConsole,
	}
}

// SetOutput redirects command output, stdout by default.
func (c *Console) SetOutput(out io.Writer) {
	c.out = out
}

// Root builds the hotelctl command tree.
func (c *Console) Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "hotelctl",
		Short:         "Front desk console for rooms, guests, bookings and payments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&c.operator, flagOperator, constant.OperatorConsole, "operator recorded in audit columns")

	root.AddCommand(
		c.bookingCmd(),
		c.paymentCmd(),
		c.guestCmd(),
		c.roomTypeCmd(),
		c.roomCmd(),
		c.serviceCmd(),
		c.guestServiceCmd(),
	)

	return root
}

// Execute runs the command line in args and reports failures the way the HTTP API does:
// the failure message, prefixed with its status code.
func (c *Console) Execute(ctx context.Context, args []string) error {
	root := c.Root()
	root.SetArgs(args)
	root.SetOut(c.out)
	root.SetErr(c.out)

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "error (%d): %s\n", failure.GetCode(err), err.Error())
		log.Debug().Err(err).Strs("args", args).Msg("console command failed")
	}

	return err
}

// context tags ctx with the console operator and opens a console span for the command.
func (c *Console) context(cmd *cobra.Command, name string) (context.Context, otel.Scope) {
	ctx := context.WithValue(cmd.Context(), constant.ContextKeyOperatorID, c.operator)

	return c.otel.NewScope(ctx, constant.OtelConsoleScopeName, constant.OtelConsoleScopeName+"."+name)
}

func (c *Console) print(value any) error {
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to print result: %w", err)
	}

	return nil
}

func (c *Console) message(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func addPagingFlags(cmd *cobra.Command, params *gDto.QueryParams) {
	cmd.Flags().IntVar(&params.Page, flagPage, constant.DefaultValuePage, "page number")
	cmd.Flags().IntVar(&params.Limit, flagLimit, constant.DefaultValueLimit, "page size")
	cmd.Flags().StringVar(&params.SortBy, flagSortBy, "", "column to sort by")
	cmd.Flags().StringVar(&params.SortDir, flagSortDir, "", "sort direction (ASC or DESC)")
}

func eqFilter(group *gDto.FilterGroup, table, field, value string) {
	if value == "" {
		return
	}

	group.Filters = append(group.Filters, gDto.Filter{
		Field:    field,
		Operator: gDto.FilterOperatorEq,
		Value:    value,
		Table:    table,
	})
}
