package repository

import (
	"context"
	"testing"

	"sop_inventory/internal/models"
)

func TestCreateLoanSetsBorrowedStatus(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)
	_, _, item := seedItem(t, db, room.ID)
	borrower := seedUser(t, db, models.RoleStudent)
	approver := seedUser(t, db, models.RoleInstructor)

	statusRepo := NewStatusRepository(db)
	if err := statusRepo.SetItemStatus(context.Background(), item.ID, models.StatusNameAvailable, nil); err != nil {
		t.Fatalf("set status: %v", err)
	}

	loanRepo := NewLoanRepository(db)
	loan := models.Loan{ItemID: item.ID, BorrowerID: borrower.ID, ApproverID: approver.ID}
	if err := loanRepo.Create(context.Background(), &loan); err != nil {
		t.Fatalf("create loan: %v", err)
	}
	if loan.LoanDate.IsZero() {
		t.Error("expected loan date to default to now")
	}

	if name := latestStatusName(t, db, item.ID); name != models.StatusNameBorrowed {
		t.Errorf("expected latest status %q, got %q", models.StatusNameBorrowed, name)
	}
}

func TestCreateLoanConflictsOnOpenLoan(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)
	_, _, item := seedItem(t, db, room.ID)
	borrower := seedUser(t, db, models.RoleStudent)
	approver := seedUser(t, db, models.RoleInstructor)

	loanRepo := NewLoanRepository(db)
	first := models.Loan{ItemID: item.ID, BorrowerID: borrower.ID, ApproverID: approver.ID}
	if err := loanRepo.Create(context.Background(), &first); err != nil {
		t.Fatalf("first loan: %v", err)
	}

	second := models.Loan{ItemID: item.ID, BorrowerID: approver.ID, ApproverID: approver.ID}
	if err := loanRepo.Create(context.Background(), &second); err != ErrItemOnLoan {
		t.Fatalf("expected ErrItemOnLoan, got %v", err)
	}

	// The rejected loan must not leave a duplicate Borrowed entry behind.
	var histories int64
	db.Model(&models.StatusHistory{}).Where("item_id = ?", item.ID).Count(&histories)
	if histories != 1 {
		t.Errorf("expected 1 history row, got %d", histories)
	}
}

func TestArchiveLoanRestoresAvailable(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)
	_, _, item := seedItem(t, db, room.ID)
	borrower := seedUser(t, db, models.RoleStudent)
	approver := seedUser(t, db, models.RoleInstructor)

	loanRepo := NewLoanRepository(db)
	loan := models.Loan{ItemID: item.ID, BorrowerID: borrower.ID, ApproverID: approver.ID}
	if err := loanRepo.Create(context.Background(), &loan); err != nil {
		t.Fatalf("create loan: %v", err)
	}
	if name := latestStatusName(t, db, item.ID); name != models.StatusNameBorrowed {
		t.Fatalf("precondition: expected %q, got %q", models.StatusNameBorrowed, name)
	}

	archived, err := loanRepo.ArchiveByID(context.Background(), loan.ID, "afleveret")
	if err != nil {
		t.Fatalf("archive loan: %v", err)
	}
	if archived == nil {
		t.Fatal("expected archive record")
	}

	if name := latestStatusName(t, db, item.ID); name != models.StatusNameAvailable {
		t.Errorf("expected latest status %q, got %q", models.StatusNameAvailable, name)
	}
}

func TestUpdateLoanMovesStatusBetweenItems(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)
	_, group, first := seedItem(t, db, room.ID)
	second := models.Item{ItemGroupID: group.ID, RoomID: room.ID, SerialNumber: "SN-0002"}
	if err := db.Create(&second).Error; err != nil {
		t.Fatalf("second item: %v", err)
	}
	borrower := seedUser(t, db, models.RoleStudent)
	approver := seedUser(t, db, models.RoleInstructor)

	loanRepo := NewLoanRepository(db)
	loan := models.Loan{ItemID: first.ID, BorrowerID: borrower.ID, ApproverID: approver.ID}
	if err := loanRepo.Create(context.Background(), &loan); err != nil {
		t.Fatalf("create loan: %v", err)
	}

	update := models.Loan{ItemID: second.ID, BorrowerID: borrower.ID, ApproverID: approver.ID}
	updated, err := loanRepo.UpdateByID(context.Background(), loan.ID, &update)
	if err != nil {
		t.Fatalf("update loan: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated loan")
	}
	if updated.ItemID != second.ID {
		t.Errorf("expected loan to point at item %d, got %d", second.ID, updated.ItemID)
	}

	if name := latestStatusName(t, db, second.ID); name != models.StatusNameBorrowed {
		t.Errorf("new item: expected %q, got %q", models.StatusNameBorrowed, name)
	}
	if name := latestStatusName(t, db, first.ID); name != models.StatusNameAvailable {
		t.Errorf("previous item: expected %q, got %q", models.StatusNameAvailable, name)
	}
}

func TestUpdateMissingLoanReturnsNil(t *testing.T) {
	db := setupTestDB(t)

	loanRepo := NewLoanRepository(db)
	updated, err := loanRepo.UpdateByID(context.Background(), 12345, &models.Loan{ItemID: 1, BorrowerID: 1, ApproverID: 1})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated != nil {
		t.Errorf("expected nil for missing loan, got %+v", updated)
	}
}

func TestSetItemStatusIdempotent(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)
	_, _, item := seedItem(t, db, room.ID)

	statusRepo := NewStatusRepository(db)
	for i := 0; i < 2; i++ {
		if err := statusRepo.SetItemStatus(context.Background(), item.ID, models.StatusNameBorrowed, nil); err != nil {
			t.Fatalf("set status %d: %v", i, err)
		}
	}

	var histories int64
	db.Model(&models.StatusHistory{}).Where("item_id = ?", item.ID).Count(&histories)
	if histories != 1 {
		t.Errorf("expected one history row after repeated set, got %d", histories)
	}
}

func TestStatusNameLookupInsensitive(t *testing.T) {
	db := setupTestDB(t)

	statusRepo := NewStatusRepository(db)
	variants := []string{"Udlånt", "udlånt", " UDLÅNT ", "ud lånt"}
	var firstID uint
	for i, name := range variants {
		status, err := statusRepo.GetOrCreateByName(context.Background(), name)
		if err != nil {
			t.Fatalf("get or create %q: %v", name, err)
		}
		if i == 0 {
			firstID = status.ID
			if status.Name != "Udlånt" {
				t.Errorf("expected trimmed original casing, got %q", status.Name)
			}
			if status.Kind != models.StatusKindBorrowed {
				t.Errorf("expected borrowed kind, got %q", status.Kind)
			}
		} else if status.ID != firstID {
			t.Errorf("%q resolved to status %d, want %d", name, status.ID, firstID)
		}
	}

	var count int64
	db.Model(&models.Status{}).Count(&count)
	if count != 1 {
		t.Errorf("expected a single status row, got %d", count)
	}
}
