package database

import (
	"log"
	"os"

	"github.com/grigorishin/course-platform-api/model"
	"github.com/grigorishin/course-platform-api/utils/auth"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seed inserts the baseline roles and, if SEED_ADMIN_EMAIL and
// SEED_ADMIN_PASSWORD are set, a superuser account. Safe to run repeatedly.
func (s *GORMStore) Seed() error {
	if err := s.seedRoles(); err != nil {
		return err
	}
	return s.seedSuperuser()
}

func (s *GORMStore) seedRoles() error {
	roles := []model.Role{
		{
			Name:        "student",
			Permissions: datatypes.NewJSONSlice([]model.Permission{}),
		},
		{
			Name: "admin",
			Permissions: datatypes.NewJSONSlice([]model.Permission{
				model.PermissionManageCourses,
				model.PermissionManageLibrary,
				model.PermissionManageUsers,
			}),
		},
	}

	for _, role := range roles {
		var existing model.Role
		err := s.db.Where("name = ?", role.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := s.db.Create(&role).Error; err != nil {
			return err
		}
		log.Printf("Seeded role %q", role.Name)
	}
	return nil
}

func (s *GORMStore) seedSuperuser() error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var existing model.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	var adminRole model.Role
	if err := s.db.Where("name = ?", "admin").First(&adminRole).Error; err != nil {
		return err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := model.User{
		Email:          email,
		FirstName:      "Admin",
		LastName:       "Admin",
		HashedPassword: hashed,
		IsActive:       true,
		IsSuperuser:    true,
		IsVerified:     true,
		RoleID:         adminRole.ID,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded superuser %s", email)
	return nil
}
