package seeder

import (
	migration "FoodShare-Backend/cmd/database/migrate"
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}

func TestSeed(t *testing.T) {
	db := newTestDB(t)

	message, err := Seed(context.Background(), db)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if message != domain.MessageSuccessSeed {
		t.Errorf("Seed() message = %q, want %q", message, domain.MessageSuccessSeed)
	}

	if got := countRows(t, db, &entities.Provider{}); got != 2 {
		t.Errorf("providers = %d, want 2", got)
	}
	if got := countRows(t, db, &entities.Receiver{}); got != 2 {
		t.Errorf("receivers = %d, want 2", got)
	}
	if got := countRows(t, db, &entities.FoodListing{}); got != 2 {
		t.Errorf("food listings = %d, want 2", got)
	}
	if got := countRows(t, db, &entities.Claim{}); got != 2 {
		t.Errorf("claims = %d, want 2", got)
	}

	var completed int64
	if err := db.Model(&entities.Claim{}).Where("status = ?", domain.ClaimStatusCompleted).Count(&completed).Error; err != nil {
		t.Fatalf("count completed claims: %v", err)
	}
	if completed != 1 {
		t.Errorf("completed claims = %d, want 1", completed)
	}
}

func TestSeed_SecondCallIsNoOp(t *testing.T) {
	db := newTestDB(t)

	if _, err := Seed(context.Background(), db); err != nil {
		t.Fatalf("first Seed() error = %v", err)
	}

	message, err := Seed(context.Background(), db)
	if err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}
	if message != domain.MessageSeedAlreadyPresent {
		t.Errorf("second Seed() message = %q, want %q", message, domain.MessageSeedAlreadyPresent)
	}

	if got := countRows(t, db, &entities.Provider{}); got != 2 {
		t.Errorf("providers after second seed = %d, want 2", got)
	}
	if got := countRows(t, db, &entities.Receiver{}); got != 2 {
		t.Errorf("receivers after second seed = %d, want 2", got)
	}
	if got := countRows(t, db, &entities.FoodListing{}); got != 2 {
		t.Errorf("food listings after second seed = %d, want 2", got)
	}
	if got := countRows(t, db, &entities.Claim{}); got != 2 {
		t.Errorf("claims after second seed = %d, want 2", got)
	}
}

func TestSeed_ListingsExpireInFuture(t *testing.T) {
	db := newTestDB(t)

	if _, err := Seed(context.Background(), db); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	// expiries are seeded at +3 and +1 days, both count as active today
	var listings []*entities.FoodListing
	if err := db.Order("expiry_date asc").Find(&listings).Error; err != nil {
		t.Fatalf("load listings: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("listings = %d, want 2", len(listings))
	}
	if listings[0].FoodName != "Chicken Biryani" {
		t.Errorf("earliest expiry listing = %q, want Chicken Biryani", listings[0].FoodName)
	}
	for _, l := range listings {
		if l.ExpiryDate.Before(time.Now()) {
			t.Errorf("listing %q already expired at seed time", l.FoodName)
		}
	}
}
