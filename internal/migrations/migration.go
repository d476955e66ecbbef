package migrations

import (
	"log"

	"sop_inventory/internal/models"

	"gorm.io/gorm"
)

// Seed inserts the fixed roles and the two canonical loan statuses if they are
// missing. Safe to run on every startup.
func Seed(db *gorm.DB) error {
	log.Println("Seeding default roles and statuses...")

	roles := []string{
		models.RoleAdmin,
		models.RoleInstructor,
		models.RoleOperations,
		models.RoleStudent,
	}
	for _, name := range roles {
		var role models.Role
		err := db.Where("name = ?", name).First(&role).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&models.Role{Name: name}).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	statuses := []string{models.StatusNameAvailable, models.StatusNameBorrowed}
	for _, name := range statuses {
		normalized := models.NormalizeStatusName(name)
		var status models.Status
		err := db.Where("normalized_name = ?", normalized).First(&status).Error
		if err == gorm.ErrRecordNotFound {
			status = models.Status{
				Name:           name,
				NormalizedName: normalized,
				Kind:           models.InferStatusKind(name),
			}
			if err := db.Create(&status).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	return nil
}
