package services

import (
	"context"
	"log/slog"
	"testing"

	"sop_inventory/internal/database"
	"sop_inventory/internal/models"
	"sop_inventory/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestDashboardSummaryBuckets(t *testing.T) {
	db := setupTestDB(t)

	address := models.Address{Road: "Skolegade", Number: "1", City: "Esbjerg", ZipCode: "6700"}
	if err := db.Create(&address).Error; err != nil {
		t.Fatalf("address: %v", err)
	}
	building := models.Building{Name: "A", AddressID: address.ID}
	if err := db.Create(&building).Error; err != nil {
		t.Fatalf("building: %v", err)
	}
	room := models.Room{RoomNumber: "1", BuildingID: building.ID}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("room: %v", err)
	}
	itemType := models.ItemType{Name: "PC"}
	if err := db.Create(&itemType).Error; err != nil {
		t.Fatalf("type: %v", err)
	}
	group := models.ItemGroup{ModelName: "ThinkCentre", ItemTypeID: itemType.ID}
	if err := db.Create(&group).Error; err != nil {
		t.Fatalf("group: %v", err)
	}

	statusRepo := repository.NewStatusRepository(db)
	ctx := context.Background()

	// Four items: available, borrowed, defect, and one with an unrecognized
	// status that must land in the Other bucket.
	statuses := []string{"Virker", "Udlånt", "Defekt skærm", "Til reparation hos leverandør"}
	for i, name := range statuses {
		item := models.Item{ItemGroupID: group.ID, RoomID: room.ID, SerialNumber: "SN"}
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("item %d: %v", i, err)
		}
		if err := statusRepo.SetItemStatus(ctx, item.ID, name, nil); err != nil {
			t.Fatalf("status %d: %v", i, err)
		}
	}

	itemRepo := repository.NewItemRepository(db)
	loanRepo := repository.NewLoanRepository(db)
	service := NewDashboardService(itemRepo, loanRepo, statusRepo, nil, 0, slog.Default())

	summary, err := service.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if summary.TotalItems != 4 {
		t.Errorf("total items: got %d, want 4", summary.TotalItems)
	}
	if summary.Available != 1 {
		t.Errorf("available: got %d, want 1", summary.Available)
	}
	if summary.Borrowed != 1 {
		t.Errorf("borrowed: got %d, want 1", summary.Borrowed)
	}
	if summary.Defect != 1 {
		t.Errorf("defect: got %d, want 1", summary.Defect)
	}
	if summary.Other != 1 {
		t.Errorf("other: got %d, want 1", summary.Other)
	}
}
