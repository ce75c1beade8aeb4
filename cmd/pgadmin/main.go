package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"pgnest/internal/config"
	"pgnest/internal/database"
	"pgnest/internal/modules/checkout"
	"pgnest/internal/modules/credentials"
	"pgnest/internal/modules/notification"
	"pgnest/internal/modules/occupancy"
	"pgnest/internal/modules/registration"
	"pgnest/internal/repository"
)

// pgadmin maps the tenancy lifecycle contracts onto a command tree so
// operators can run them without the dashboard.
func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "pgadmin",
		Short: "PG tenancy administration",
	}

	rootCmd.AddCommand(
		approveCmd(),
		rejectCmd(),
		submitNoticeCmd(),
		withdrawNoticeCmd(),
		checkoutCmd(),
		reactivateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func getDB() (*gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func buildServices(db *gorm.DB) (*registration.Service, *checkout.Service) {
	ledger := occupancy.NewLedger(db)
	issuer := credentials.NewIssuer(repository.NewCounterRepository(db))
	notifs := notification.NewService(repository.NewNotificationRepository(db), notification.LogSender{})

	return registration.NewService(db, ledger, issuer, notifs),
		checkout.NewService(db, ledger, issuer, notifs)
}

func approveCmd() *cobra.Command {
	var roomID int64
	var checkIn, months, method string
	var amount, deposit float64
	var keyIssued bool

	cmd := &cobra.Command{
		Use:   "approve [tenant-id]",
		Short: "Approve a pending registration and assign a bed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := parseID(args[0])
			if err != nil {
				return err
			}
			checkInDate, err := time.Parse("2006-01-02", checkIn)
			if err != nil {
				return fmt.Errorf("invalid --check-in date: %w", err)
			}

			db, err := getDB()
			if err != nil {
				return err
			}
			regService, _ := buildServices(db)

			result, err := regService.Approve(context.Background(), registration.ApproveRequest{
				TenantID:    tenantID,
				RoomID:      roomID,
				CheckInDate: checkInDate,
				Payment: registration.PaymentDetails{
					Amount: decimal.NewFromFloat(amount),
					Months: splitMonths(months),
					Method: parseMethod(method),
				},
				DepositAmount: decimal.NewFromFloat(deposit),
				KeyIssued:     keyIssued,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Approved tenant %d\n", result.Tenant.ID)
			fmt.Printf("  Tenant code: %s\n", result.TenantCode)
			fmt.Printf("  One-time password: %s\n", result.OneTimePassword)
			return nil
		},
	}

	cmd.Flags().Int64Var(&roomID, "room", 0, "room id to assign")
	cmd.Flags().StringVar(&checkIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "initial rent amount")
	cmd.Flags().StringVar(&months, "months", "", "comma-separated billing periods, e.g. 'September 2026'")
	cmd.Flags().Float64Var(&deposit, "deposit", 0, "deposit amount")
	cmd.Flags().StringVar(&method, "method", "cash", "payment method")
	cmd.Flags().BoolVar(&keyIssued, "key-issued", false, "room key handed over")
	_ = cmd.MarkFlagRequired("room")
	_ = cmd.MarkFlagRequired("check-in")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("months")

	return cmd
}

func rejectCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject [tenant-id]",
		Short: "Reject a pending registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := parseID(args[0])
			if err != nil {
				return err
			}

			db, err := getDB()
			if err != nil {
				return err
			}
			regService, _ := buildServices(db)

			tenant, err := regService.Reject(context.Background(), tenantID, reason)
			if err != nil {
				return err
			}
			fmt.Printf("Rejected tenant %d (%s)\n", tenant.ID, tenant.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "rejection reason")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func submitNoticeCmd() *cobra.Command {
	var lastDay string

	cmd := &cobra.Command{
		Use:   "submit-notice [tenant-id]",
		Short: "Record a tenant's notice of departure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := parseID(args[0])
			if err != nil {
				return err
			}
			last, err := time.Parse("2006-01-02", lastDay)
			if err != nil {
				return fmt.Errorf("invalid --last-day date: %w", err)
			}

			db, err := getDB()
			if err != nil {
				return err
			}
			_, checkoutService := buildServices(db)

			result, err := checkoutService.SubmitNotice(context.Background(), tenantID, last)
			if err != nil {
				return err
			}
			fmt.Printf("Notice recorded: %d days, refund eligible: %v\n",
				result.DaysNotice, result.RefundEligible)
			return nil
		},
	}

	cmd.Flags().StringVar(&lastDay, "last-day", "", "last staying date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("last-day")
	return cmd
}

func withdrawNoticeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw-notice [tenant-id]",
		Short: "Withdraw a pending notice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := parseID(args[0])
			if err != nil {
				return err
			}

			db, err := getDB()
			if err != nil {
				return err
			}
			_, checkoutService := buildServices(db)

			tenant, err := checkoutService.WithdrawNotice(context.Background(), tenantID)
			if err != nil {
				return err
			}
			fmt.Printf("Notice withdrawn for tenant %d (%s)\n", tenant.ID, tenant.Name)
			return nil
		},
	}
}

func checkoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout [tenant-id]",
		Short: "Complete a departure and archive the stay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := parseID(args[0])
			if err != nil {
				return err
			}

			db, err := getDB()
			if err != nil {
				return err
			}
			_, checkoutService := buildServices(db)

			archive, err := checkoutService.Checkout(context.Background(), checkout.CheckoutRequest{
				TenantID: tenantID,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Checked out tenant %d, stayed %d days\n", archive.TenantID, archive.StayDuration)
			return nil
		},
	}
}

func reactivateCmd() *cobra.Command {
	var roomID int64
	var checkIn, months, method string
	var rent, deposit float64
	var issuePassword bool

	cmd := &cobra.Command{
		Use:   "reactivate [tenant-id]",
		Short: "Return a former tenant to active occupancy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := parseID(args[0])
			if err != nil {
				return err
			}
			checkInDate, err := time.Parse("2006-01-02", checkIn)
			if err != nil {
				return fmt.Errorf("invalid --check-in date: %w", err)
			}

			db, err := getDB()
			if err != nil {
				return err
			}
			_, checkoutService := buildServices(db)

			result, err := checkoutService.Reactivate(context.Background(), checkout.ReactivateRequest{
				TenantID:      tenantID,
				RoomID:        roomID,
				CheckInDate:   checkInDate,
				RentMonths:    splitMonths(months),
				RentAmount:    decimal.NewFromFloat(rent),
				DepositAmount: decimal.NewFromFloat(deposit),
				Method:        parseMethod(method),
				IssuePassword: issuePassword,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Reactivated tenant %d (code %s)\n", result.Tenant.ID, result.Tenant.TenantCode)
			if result.OneTimePassword != "" {
				fmt.Printf("  One-time password: %s\n", result.OneTimePassword)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&roomID, "room", 0, "room id to assign")
	cmd.Flags().StringVar(&checkIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&rent, "rent", 0, "rent amount for the selected months")
	cmd.Flags().StringVar(&months, "months", "", "comma-separated billing periods")
	cmd.Flags().Float64Var(&deposit, "deposit", 0, "new deposit amount")
	cmd.Flags().StringVar(&method, "method", "cash", "payment method")
	cmd.Flags().BoolVar(&issuePassword, "issue-password", false, "issue a fresh one-time password")
	_ = cmd.MarkFlagRequired("room")
	_ = cmd.MarkFlagRequired("check-in")

	return cmd
}
