package repository

import (
	"context"
	"testing"

	"sop_inventory/internal/database"
	"sop_inventory/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
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

// seedRoom creates the address/building/room chain items hang off.
func seedRoom(t *testing.T, db *gorm.DB) *models.Room {
	t.Helper()
	address := models.Address{Road: "Skolegade", Number: "1", City: "Esbjerg", ZipCode: "6700"}
	if err := db.Create(&address).Error; err != nil {
		t.Fatalf("address: %v", err)
	}
	building := models.Building{Name: "Hovedbygning", AddressID: address.ID}
	if err := db.Create(&building).Error; err != nil {
		t.Fatalf("building: %v", err)
	}
	room := models.Room{RoomNumber: "1.04", BuildingID: building.ID}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("room: %v", err)
	}
	return &room
}

func seedItem(t *testing.T, db *gorm.DB, roomID uint) (*models.ItemType, *models.ItemGroup, *models.Item) {
	t.Helper()
	itemType := models.ItemType{Name: "Bord"}
	if err := db.Create(&itemType).Error; err != nil {
		t.Fatalf("item type: %v", err)
	}
	group := models.ItemGroup{ModelName: "Hæve-sænkebord", ItemTypeID: itemType.ID, Quantity: 1}
	if err := db.Create(&group).Error; err != nil {
		t.Fatalf("item group: %v", err)
	}
	item := models.Item{ItemGroupID: group.ID, RoomID: roomID, SerialNumber: "SN-0001"}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("item: %v", err)
	}
	return &itemType, &group, &item
}

func seedUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()
	var r models.Role
	if err := db.Where("name = ?", role).First(&r).Error; err == gorm.ErrRecordNotFound {
		r = models.Role{Name: role}
		if err := db.Create(&r).Error; err != nil {
			t.Fatalf("role: %v", err)
		}
	} else if err != nil {
		t.Fatalf("role: %v", err)
	}
	user := models.User{
		FirstName:        "Test",
		LastName:         "Bruger",
		EncryptedEmail:   "ciphertext-" + t.Name(),
		EmailFingerprint: "fp-" + t.Name() + "-" + role,
		PasswordHash:     "x",
		RoleID:           r.ID,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("user: %v", err)
	}
	return &user
}

func latestStatusName(t *testing.T, db *gorm.DB, itemID uint) string {
	t.Helper()
	var history models.StatusHistory
	err := db.Preload("Status").
		Where("item_id = ?", itemID).
		Order("status_update_date DESC, id DESC").
		First(&history).Error
	if err != nil {
		t.Fatalf("latest status: %v", err)
	}
	return history.Status.Name
}

func TestArchiveItemMovesRow(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)
	_, _, item := seedItem(t, db, room.ID)

	statusRepo := NewStatusRepository(db)
	if err := statusRepo.SetItemStatus(context.Background(), item.ID, "Virker", nil); err != nil {
		t.Fatalf("set status: %v", err)
	}

	repo := NewItemRepository(db)
	archived, err := repo.ArchiveByID(context.Background(), item.ID, "udgået")
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if archived == nil {
		t.Fatal("expected archive record")
	}
	if archived.ID != item.ID || archived.ArchiveNote != "udgået" {
		t.Errorf("unexpected archive record: %+v", archived)
	}
	if archived.DeleteTime.IsZero() {
		t.Error("expected DeleteTime to be set")
	}

	var liveCount int64
	db.Model(&models.Item{}).Where("id = ?", item.ID).Count(&liveCount)
	if liveCount != 0 {
		t.Errorf("expected live item to be gone, found %d", liveCount)
	}
	var historyCount int64
	db.Model(&models.StatusHistory{}).Where("item_id = ?", item.ID).Count(&historyCount)
	if historyCount != 0 {
		t.Errorf("expected status history to be gone, found %d", historyCount)
	}
	var archiveCount int64
	db.Model(&models.ArchiveItem{}).Where("id = ?", item.ID).Count(&archiveCount)
	if archiveCount != 1 {
		t.Errorf("expected exactly one archive row, found %d", archiveCount)
	}
	var archivedHistories int64
	db.Model(&models.ArchiveStatusHistory{}).Where("archive_item_id = ?", item.ID).Count(&archivedHistories)
	if archivedHistories != 1 {
		t.Errorf("expected one archived history row, found %d", archivedHistories)
	}
}

func TestArchiveMissingItemReturnsNil(t *testing.T) {
	db := setupTestDB(t)

	repo := NewItemRepository(db)
	archived, err := repo.ArchiveByID(context.Background(), 9999, "n/a")
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if archived != nil {
		t.Errorf("expected nil for missing item, got %+v", archived)
	}
}

func TestArchiveItemTypeCascades(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)

	itemType := models.ItemType{Name: "Bord"}
	if err := db.Create(&itemType).Error; err != nil {
		t.Fatalf("item type: %v", err)
	}

	// Two groups with three items total.
	groupSizes := []int{2, 1}
	totalItems := 0
	for g, size := range groupSizes {
		group := models.ItemGroup{ModelName: "Model", ItemTypeID: itemType.ID, Quantity: size}
		if err := db.Create(&group).Error; err != nil {
			t.Fatalf("group %d: %v", g, err)
		}
		for i := 0; i < size; i++ {
			item := models.Item{ItemGroupID: group.ID, RoomID: room.ID, SerialNumber: "SN"}
			if err := db.Create(&item).Error; err != nil {
				t.Fatalf("item: %v", err)
			}
			totalItems++
		}
	}

	repo := NewItemTypeRepository(db)
	archived, err := repo.ArchiveByID(context.Background(), itemType.ID, "oprydning")
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if archived == nil {
		t.Fatal("expected archive record")
	}

	var liveTypes, liveGroups, liveItems int64
	db.Model(&models.ItemType{}).Count(&liveTypes)
	db.Model(&models.ItemGroup{}).Count(&liveGroups)
	db.Model(&models.Item{}).Count(&liveItems)
	if liveTypes != 0 || liveGroups != 0 || liveItems != 0 {
		t.Errorf("expected empty live tables, got types=%d groups=%d items=%d", liveTypes, liveGroups, liveItems)
	}

	var archivedTypes, archivedGroups, archivedItems int64
	db.Model(&models.ArchiveItemType{}).Count(&archivedTypes)
	db.Model(&models.ArchiveItemGroup{}).Count(&archivedGroups)
	db.Model(&models.ArchiveItem{}).Count(&archivedItems)
	if archivedTypes != 1 {
		t.Errorf("expected 1 archived type, got %d", archivedTypes)
	}
	if archivedGroups != int64(len(groupSizes)) {
		t.Errorf("expected %d archived groups, got %d", len(groupSizes), archivedGroups)
	}
	if archivedItems != int64(totalItems) {
		t.Errorf("expected %d archived items, got %d", totalItems, archivedItems)
	}

	// Archived children still reference their parents.
	var archivedGroupRows []models.ArchiveItemGroup
	db.Find(&archivedGroupRows)
	for _, g := range archivedGroupRows {
		if g.ItemTypeID != itemType.ID {
			t.Errorf("archived group %d references type %d, want %d", g.ID, g.ItemTypeID, itemType.ID)
		}
	}
}

func TestArchiveUserCascadesLoansAndRequests(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)
	_, _, item := seedItem(t, db, room.ID)
	borrower := seedUser(t, db, models.RoleStudent)
	approver := seedUser(t, db, models.RoleInstructor)

	loanRepo := NewLoanRepository(db)
	loan := models.Loan{ItemID: item.ID, BorrowerID: borrower.ID, ApproverID: approver.ID}
	if err := loanRepo.Create(context.Background(), &loan); err != nil {
		t.Fatalf("loan: %v", err)
	}
	request := models.Request{UserID: borrower.ID, ItemName: "Skærm", Status: models.RequestPending}
	if err := db.Create(&request).Error; err != nil {
		t.Fatalf("request: %v", err)
	}

	repo := NewUserRepository(db)
	archived, err := repo.ArchiveByID(context.Background(), borrower.ID, "udmeldt")
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if archived == nil {
		t.Fatal("expected archive record")
	}

	var liveUsers, liveLoans, liveRequests int64
	db.Model(&models.User{}).Where("id = ?", borrower.ID).Count(&liveUsers)
	db.Model(&models.Loan{}).Count(&liveLoans)
	db.Model(&models.Request{}).Count(&liveRequests)
	if liveUsers != 0 || liveLoans != 0 || liveRequests != 0 {
		t.Errorf("expected cascade to clear live rows, got users=%d loans=%d requests=%d", liveUsers, liveLoans, liveRequests)
	}

	var archivedLoans, archivedRequests int64
	db.Model(&models.ArchiveLoan{}).Count(&archivedLoans)
	db.Model(&models.ArchiveRequest{}).Count(&archivedRequests)
	if archivedLoans != 1 || archivedRequests != 1 {
		t.Errorf("expected 1 archived loan and request, got %d/%d", archivedLoans, archivedRequests)
	}

	// The item the loan held goes back to Available.
	if name := latestStatusName(t, db, item.ID); name != models.StatusNameAvailable {
		t.Errorf("expected item back to %q, got %q", models.StatusNameAvailable, name)
	}
}
