package export

import (
	migration "FoodShare-Backend/cmd/database/migrate"
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"bytes"
	"context"
	"encoding/csv"
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

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	return records
}

func TestExportService_ExportProviders(t *testing.T) {
	db := newTestDB(t)
	exportService := NewExportService(NewExportRepository(db), nil)

	providers := []*entities.Provider{
		{Name: "FreshBites Restaurant", Type: "Restaurant", Address: "123 Market Street", City: "Mumbai", Contact: "+91-9876543210"},
		{Name: "Happy Meals", Type: "Caterer", Address: "45 Food Plaza", City: "Delhi", Contact: "+91-9876501234"},
	}
	if err := db.Create(&providers).Error; err != nil {
		t.Fatalf("seed providers: %v", err)
	}

	data, err := exportService.ExportProviders(context.Background())
	if err != nil {
		t.Fatalf("ExportProviders() error = %v", err)
	}

	records := parseCSV(t, data)
	if len(records) != 3 {
		t.Fatalf("csv has %d rows, want header + 2", len(records))
	}

	wantHeader := []string{"provider_id", "name", "type", "address", "city", "contact"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}
	if records[1][1] != "FreshBites Restaurant" {
		t.Errorf("first row name = %q, want FreshBites Restaurant", records[1][1])
	}
}

func TestExportService_ExportListings(t *testing.T) {
	db := newTestDB(t)
	exportService := NewExportService(NewExportRepository(db), nil)

	expiry := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	listing := &entities.FoodListing{
		FoodName:     "Vegetable Curry",
		Quantity:     20,
		ExpiryDate:   expiry,
		ProviderID:   1,
		ProviderType: "Restaurant",
		Location:     "Mumbai",
		FoodType:     "Vegetarian",
		MealType:     "Lunch",
	}
	if err := db.Create(listing).Error; err != nil {
		t.Fatalf("seed listing: %v", err)
	}

	data, err := exportService.ExportListings(context.Background())
	if err != nil {
		t.Fatalf("ExportListings() error = %v", err)
	}

	records := parseCSV(t, data)
	if len(records) != 2 {
		t.Fatalf("csv has %d rows, want header + 1", len(records))
	}
	if records[1][3] != "2026-09-03" {
		t.Errorf("expiry column = %q, want 2026-09-03", records[1][3])
	}
	if records[1][2] != "20" {
		t.Errorf("quantity column = %q, want 20", records[1][2])
	}
}

func TestExportService_ExportClaims_EmptyTable(t *testing.T) {
	db := newTestDB(t)
	exportService := NewExportService(NewExportRepository(db), nil)

	data, err := exportService.ExportClaims(context.Background())
	if err != nil {
		t.Fatalf("ExportClaims() error = %v", err)
	}

	records := parseCSV(t, data)
	if len(records) != 1 {
		t.Fatalf("csv has %d rows, want header only", len(records))
	}
	wantHeader := []string{"claim_id", "food_id", "receiver_id", "status", "timestamp"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}
}

func TestExportService_ExportClaims(t *testing.T) {
	db := newTestDB(t)
	exportService := NewExportService(NewExportRepository(db), nil)

	claim := &entities.Claim{FoodID: 1, ReceiverID: 2, Status: domain.ClaimStatusCompleted, Timestamp: time.Now()}
	if err := db.Create(claim).Error; err != nil {
		t.Fatalf("seed claim: %v", err)
	}

	data, err := exportService.ExportClaims(context.Background())
	if err != nil {
		t.Fatalf("ExportClaims() error = %v", err)
	}

	records := parseCSV(t, data)
	if len(records) != 2 {
		t.Fatalf("csv has %d rows, want header + 1", len(records))
	}
	if records[1][3] != domain.ClaimStatusCompleted {
		t.Errorf("status column = %q, want %q", records[1][3], domain.ClaimStatusCompleted)
	}
}
