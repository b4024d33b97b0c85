// cmd/seed/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/AbuAli85/contract-management-backend/internal/auth"
	"github.com/AbuAli85/contract-management-backend/internal/config"
	"github.com/AbuAli85/contract-management-backend/internal/model"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	adminEmail    string
	adminPassword string
	withDemoData  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed an admin user and optional demo tenants",
		RunE:  runSeed,
	}
	rootCmd.Flags().StringVar(&adminEmail, "email", "admin@example.com", "admin user email")
	rootCmd.Flags().StringVar(&adminPassword, "password", "", "admin user password (required)")
	rootCmd.Flags().BoolVar(&withDemoData, "demo", false, "also create demo companies, parties and a holding group")
	rootCmd.MarkFlagRequired("password")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
		cfg.Database.Password, cfg.Database.Name, cfg.Database.SSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	hash, err := auth.NewPasswordHasher().Hash(adminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{Email: adminEmail, PasswordHash: hash, Status: model.StatusActive}
	if err := db.Where("email = ?", adminEmail).FirstOrCreate(user).Error; err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}
	fmt.Printf("admin user %s (%s)\n", user.Email, user.ID)

	if !withDemoData {
		return nil
	}

	group := &model.HoldingGroup{NameEn: "Demo Holdings", IsActive: true}
	if err := db.Where("name_en = ?", group.NameEn).FirstOrCreate(group).Error; err != nil {
		return fmt.Errorf("creating demo group: %w", err)
	}

	employer := &model.Party{
		Name:         "Demo Employer LLC",
		ContactEmail: adminEmail,
		Type:         model.PartyTypeEmployer,
		Role:         "owner",
		Status:       model.PartyStatusActive,
	}
	if err := db.Where("name = ?", employer.Name).FirstOrCreate(employer).Error; err != nil {
		return fmt.Errorf("creating demo employer party: %w", err)
	}

	company := &model.Company{
		Name:     "Demo Trading Co",
		GroupID:  &group.ID,
		PartyID:  &employer.ID,
		OwnerID:  user.ID,
		IsActive: true,
	}
	if err := db.Where("name = ?", company.Name).FirstOrCreate(company).Error; err != nil {
		return fmt.Errorf("creating demo company: %w", err)
	}

	member := &model.CompanyMember{
		CompanyID: company.ID,
		UserID:    user.ID,
		Role:      "owner",
		IsActive:  true,
	}
	if err := db.Where("company_id = ? AND user_id = ?", company.ID, user.ID).FirstOrCreate(member).Error; err != nil {
		return fmt.Errorf("creating demo membership: %w", err)
	}

	employee := &model.EmployerEmployee{CompanyID: company.ID, FullName: "Demo Employee", Status: "active"}
	if err := db.Where("company_id = ? AND full_name = ?", company.ID, employee.FullName).FirstOrCreate(employee).Error; err != nil {
		return fmt.Errorf("creating demo employee: %w", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	checkIn := today.Add(8 * time.Hour)
	attendance := &model.EmployeeAttendance{EmployeeID: employee.ID, WorkDate: today, CheckInAt: &checkIn}
	if err := db.Where("employee_id = ? AND work_date = ?", employee.ID, today).FirstOrCreate(attendance).Error; err != nil {
		return fmt.Errorf("creating demo attendance: %w", err)
	}

	fmt.Printf("demo tenant %s (%s) in group %s\n", company.Name, company.ID, group.NameEn)
	return nil
}
