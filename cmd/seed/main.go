package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"pgnest/internal/config"
	"pgnest/internal/database"
	"pgnest/internal/domain"
	"pgnest/internal/pkg/password"
)

// Seeds a development database: one admin, rooms across two buildings,
// and tenants in every lifecycle state so the dashboard has something to
// show. Destroys existing data first.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed:", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM complaints")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM tenant_archives")
	db.Exec("DELETE FROM tenants")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM counters")
	db.Exec("DELETE FROM admin_users")

	// ================== ADMIN ==================
	log.Println("Creating admin user...")
	adminHash, _ := password.Hash("admin123")
	db.Create(&domain.AdminUser{
		Email:        "admin@pgnest.local",
		PasswordHash: adminHash,
		Name:         "PG Admin",
	})
	log.Println("Admin created: admin@pgnest.local / admin123")

	// ================== ROOMS ==================
	log.Println("Creating rooms...")
	rooms := []domain.Room{
		{Building: "A", Floor: 1, RoomNumber: "A-101", SharingType: domain.SharingDouble, Price: decimal.NewFromInt(6000), Capacity: 2, Status: domain.RoomAvailable, IsActive: true},
		{Building: "A", Floor: 1, RoomNumber: "A-102", SharingType: domain.SharingTriple, Price: decimal.NewFromInt(5000), Capacity: 3, Status: domain.RoomAvailable, IsActive: true},
		{Building: "A", Floor: 2, RoomNumber: "A-201", SharingType: domain.SharingSingle, Price: decimal.NewFromInt(9000), Capacity: 1, Status: domain.RoomAvailable, IsActive: true},
		{Building: "B", Floor: 1, RoomNumber: "B-101", SharingType: domain.SharingQuad, Price: decimal.NewFromInt(4500), Capacity: 4, Status: domain.RoomAvailable, IsActive: true},
		{Building: "B", Floor: 2, RoomNumber: "B-201", SharingType: domain.SharingDouble, Price: decimal.NewFromInt(6500), Capacity: 2, Status: domain.RoomMaintenance, IsActive: true},
	}
	for i := range rooms {
		db.Create(&rooms[i])
	}

	// ================== TENANTS ==================
	log.Println("Creating tenants...")
	now := time.Now()
	hash, _ := password.Hash("resident123")

	// Active residents in A-101 (room full after these two).
	moveIn := now.AddDate(0, -3, 0)
	for i, name := range []string{"Ravi Kumar", "Suresh Nair"} {
		bed := i + 1
		tenant := domain.Tenant{
			Name:               name,
			Email:              fmt.Sprintf("resident%d@mail.com", i+1),
			Phone:              fmt.Sprintf("+91 98765 432%02d", i+10),
			RegistrationStatus: domain.RegistrationApproved,
			TenantCode:         fmt.Sprintf("PG%05d", i+1),
			PasswordHash:       hash,
			RoomID:             &rooms[0].ID,
			BedNumber:          &bed,
			IsActive:           true,
			MoveInDate:         &moveIn,
			DepositFees:        decimal.NewFromInt(5000),
			KeyIssued:          true,
			ApprovalDate:       &moveIn,
		}
		db.Create(&tenant)

		// Paid up through last month; this month still owing.
		db.Create(&domain.Payment{
			ID:            uuid.New(),
			TenantID:      tenant.ID,
			Amount:        rooms[0].Price,
			Months:        domain.MonthList{domain.PeriodLabel(now.AddDate(0, -1, 0))},
			PaymentStatus: domain.PaymentPaid,
			PaymentMethod: domain.MethodUPI,
			PaymentDate:   now.AddDate(0, -1, 0),
		})
		db.Create(&domain.Payment{
			ID:               uuid.New(),
			TenantID:         tenant.ID,
			Amount:           decimal.NewFromInt(5000),
			PaymentStatus:    domain.PaymentPaid,
			PaymentMethod:    domain.MethodCash,
			IsDepositPayment: true,
			PaymentDate:      moveIn,
		})
	}
	rooms[0].CurrentOccupancy = 2
	rooms[0].Status = domain.RoomOccupied
	db.Save(&rooms[0])

	// Resident on notice in A-201.
	lastDay := now.AddDate(0, 0, 20)
	bed := 1
	onNotice := domain.Tenant{
		Name:               "Meena Iyer",
		Email:              "meena@mail.com",
		RegistrationStatus: domain.RegistrationApproved,
		TenantCode:         "PG00003",
		PasswordHash:       hash,
		RoomID:             &rooms[2].ID,
		BedNumber:          &bed,
		IsActive:           true,
		IsOnNoticePeriod:   true,
		LastStayingDate:    &lastDay,
		MoveInDate:         &moveIn,
		DepositFees:        decimal.NewFromInt(9000),
		KeyIssued:          true,
		ApprovalDate:       &moveIn,
	}
	db.Create(&onNotice)
	rooms[2].CurrentOccupancy = 1
	rooms[2].Status = domain.RoomOccupied
	db.Save(&rooms[2])

	// Pending applications awaiting the approval queue.
	for i, name := range []string{"Arjun Das", "Kavya Menon", "Rohit Shetty"} {
		db.Create(&domain.Tenant{
			Name:               name,
			Email:              fmt.Sprintf("applicant%d@mail.com", i+1),
			Phone:              fmt.Sprintf("+91 91234 567%02d", i+10),
			GuardianName:       fmt.Sprintf("Guardian %d", i+1),
			RegistrationStatus: domain.RegistrationPending,
		})
	}

	// One rejected application.
	rejectedAt := now.AddDate(0, 0, -5)
	db.Create(&domain.Tenant{
		Name:               "Vikram Singh",
		Email:              "vikram@mail.com",
		RegistrationStatus: domain.RegistrationRejected,
		RejectionReason:    "No vacancy in requested building",
		RejectionDate:      &rejectedAt,
	})

	// Counter continues after the codes handed out above.
	db.Create(&domain.Counter{Name: domain.CounterTenantCode, Value: 3})

	log.Println("Seed complete.")
}
