package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"hrapp/internal/leavetype"
	"hrapp/internal/user"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var defaultLeaveTypes = []leavetype.LeaveType{
	{Name: "Annual Leave", Category: leavetype.CategoryAnnual, Description: "Paid yearly vacation days"},
	{Name: "Sick Leave", Category: leavetype.CategorySick, Description: "Leave for illness or medical care"},
	{Name: "Maternity Leave", Category: leavetype.CategoryMaternity, Description: "Leave for childbirth and recovery"},
	{Name: "Paternity Leave", Category: leavetype.CategoryPaternity, Description: "Leave for fathers of newborn children"},
	{Name: "Unpaid Leave", Category: leavetype.CategoryUnpaid, Description: "Leave without pay"},
	{Name: "Other", Category: leavetype.CategoryOther, Description: "Leave that does not fit another category"},
}

// Run mengisi data awal: jenis cuti default dan akun ADMIN pertama.
// Hanya berjalan saat SEED_DEFAULT_DATA=true, dan idempotent.
func Run(ctx context.Context, db *gorm.DB, logger ...*zap.Logger) error {
	l := zap.L().Named("seed")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("seed")
	}

	if os.Getenv("SEED_DEFAULT_DATA") != "true" {
		return nil
	}

	if err := seedLeaveTypes(ctx, db, l); err != nil {
		return err
	}
	return seedAdminUser(ctx, db, l)
}

func seedLeaveTypes(ctx context.Context, db *gorm.DB, l *zap.Logger) error {
	for _, lt := range defaultLeaveTypes {
		var existing leavetype.LeaveType
		err := db.WithContext(ctx).Where("name = ?", lt.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("seed leave type %q: %w", lt.Name, err)
		}

		row := lt
		if err := db.WithContext(ctx).Create(&row).Error; err != nil {
			return fmt.Errorf("seed leave type %q: %w", lt.Name, err)
		}
		l.Info("seeded leave type", zap.String("name", lt.Name))
	}
	return nil
}

func seedAdminUser(ctx context.Context, db *gorm.DB, l *zap.Logger) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		l.Warn("SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing user.User
	err := db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("seed admin user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	name := os.Getenv("SEED_ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}

	admin := user.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     "ADMIN",
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	l.Info("seeded admin user", zap.String("email", email))
	return nil
}
