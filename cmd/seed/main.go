// Command seed populates a development database with demo data: an admin
// account, verified doctors with generated availability, patients and a few
// published articles. Every account uses the password "password123".
package main

import (
	"fmt"
	"time"

	"mediconnect/config"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/infrastructure/database"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const seedPassword = "password123"

var specializations = []string{
	"Cardiology", "Dermatology", "Pediatrics", "Orthopedics",
	"Neurology", "General Practice", "Psychiatry", "Ophthalmology",
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(cfg.DB); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seed(db); err != nil {
		logrus.Fatalf("Seeding failed: %v", err)
	}

	logrus.Info("Seeding complete")
}

func seed(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	password := string(hash)

	return db.Transaction(func(tx *gorm.DB) error {
		cities := make([]entity.City, 0, 5)
		for i := 0; i < 5; i++ {
			cities = append(cities, entity.City{Name: gofakeit.City()})
		}
		if err := tx.Create(&cities).Error; err != nil {
			return fmt.Errorf("seed cities: %w", err)
		}

		admin := entity.User{
			RoleID:   entity.RoleIDAdmin,
			Email:    "admin@mediconnect.local",
			Password: password,
			FullName: "Platform Admin",
			IsActive: true,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}

		doctors, err := seedDoctors(tx, password, cities)
		if err != nil {
			return err
		}

		if err := seedPatients(tx, password); err != nil {
			return err
		}

		if err := seedSlots(tx, doctors); err != nil {
			return err
		}

		return seedArticles(tx, doctors)
	})
}

func seedDoctors(tx *gorm.DB, password string, cities []entity.City) ([]entity.DoctorProfile, error) {
	doctors := make([]entity.DoctorProfile, 0, 8)
	for i := 0; i < 8; i++ {
		user := entity.User{
			RoleID:   entity.RoleIDDoctor,
			Email:    gofakeit.Email(),
			Password: password,
			FullName: "Dr. " + gofakeit.Name(),
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("seed doctor user: %w", err)
		}

		cityID := cities[i%len(cities)].ID
		profile := entity.DoctorProfile{
			UserID:          user.ID,
			LicenseNumber:   fmt.Sprintf("LIC-%06d", gofakeit.Number(100000, 999999)),
			Specialization:  specializations[i%len(specializations)],
			CityID:          &cityID,
			Biography:       gofakeit.Paragraph(1, 3, 12, " "),
			ConsultationFee: decimal.NewFromInt(int64(gofakeit.Number(30, 200))),
			IsVerified:      true,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return nil, fmt.Errorf("seed doctor profile: %w", err)
		}

		qualification := entity.Qualification{
			DoctorID:    user.ID,
			Degree:      "MD",
			Institution: gofakeit.Company() + " Medical School",
			Year:        gofakeit.Number(1990, 2020),
			IsVerified:  true,
		}
		if err := tx.Create(&qualification).Error; err != nil {
			return nil, fmt.Errorf("seed qualification: %w", err)
		}

		doctors = append(doctors, profile)
	}
	return doctors, nil
}

func seedPatients(tx *gorm.DB, password string) error {
	for i := 0; i < 20; i++ {
		user := entity.User{
			RoleID:   entity.RoleIDPatient,
			Email:    gofakeit.Email(),
			Password: password,
			FullName: gofakeit.Name(),
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("seed patient user: %w", err)
		}

		gender := entity.GenderMale
		if gofakeit.Bool() {
			gender = entity.GenderFemale
		}
		profile := entity.PatientProfile{
			UserID:      user.ID,
			PhoneNumber: gofakeit.Phone(),
			DateOfBirth: gofakeit.DateRange(time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC)),
			Gender:      gender,
			Address:     gofakeit.Address().Address,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return fmt.Errorf("seed patient profile: %w", err)
		}
	}
	return nil
}

// seedSlots gives every doctor two weeks of weekday slots, 09:00-12:00 in
// 30-minute steps.
func seedSlots(tx *gorm.DB, doctors []entity.DoctorProfile) error {
	start := time.Now().UTC().Truncate(24 * time.Hour)
	for _, doctor := range doctors {
		rule := entity.RecurrenceRule{
			DoctorID:    doctor.UserID,
			Frequency:   entity.FrequencyDaily,
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, 13),
			WindowStart: "09:00",
			WindowEnd:   "12:00",
			SlotMinutes: 30,
		}

		slots := make([]entity.AvailabilitySlot, 0)
		for _, w := range rule.Expand() {
			if w.Date.Weekday() == time.Saturday || w.Date.Weekday() == time.Sunday {
				continue
			}
			slots = append(slots, entity.AvailabilitySlot{
				DoctorID:  doctor.UserID,
				SlotDate:  w.Date,
				StartTime: w.StartTime,
				EndTime:   w.EndTime,
			})
		}
		if err := tx.Create(&slots).Error; err != nil {
			return fmt.Errorf("seed slots: %w", err)
		}
	}
	return nil
}

func seedArticles(tx *gorm.DB, doctors []entity.DoctorProfile) error {
	for i := 0; i < 6; i++ {
		article := entity.Article{
			AuthorID:    doctors[i%len(doctors)].UserID,
			Title:       gofakeit.Sentence(6),
			Content:     gofakeit.Paragraph(4, 5, 15, "\n\n"),
			IsPublished: i%2 == 0,
		}
		if err := tx.Create(&article).Error; err != nil {
			return fmt.Errorf("seed article: %w", err)
		}
	}
	return nil
}
