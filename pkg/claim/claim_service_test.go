package claim

import (
	migration "FoodShare-Backend/cmd/database/migrate"
	"FoodShare-Backend/domain"
	"context"
	"path/filepath"
	"testing"

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

func TestClaimService_CreateClaim(t *testing.T) {
	db := newTestDB(t)
	claimService := NewClaimService(NewClaimRepository(db))

	res, err := claimService.CreateClaim(context.Background(), domain.CreateClaimRequest{
		FoodID:     1,
		ReceiverID: 1,
	})
	if err != nil {
		t.Fatalf("CreateClaim() error = %v", err)
	}

	if res.ID == 0 {
		t.Error("CreateClaim() returned zero claim id")
	}
	if res.Status != domain.ClaimStatusPending {
		t.Errorf("CreateClaim() status = %q, want %q", res.Status, domain.ClaimStatusPending)
	}
	if res.Timestamp.IsZero() {
		t.Error("CreateClaim() timestamp is zero")
	}
}

func TestClaimService_UpdateClaimStatus(t *testing.T) {
	db := newTestDB(t)
	claimService := NewClaimService(NewClaimRepository(db))

	created, err := claimService.CreateClaim(context.Background(), domain.CreateClaimRequest{FoodID: 2, ReceiverID: 2})
	if err != nil {
		t.Fatalf("CreateClaim() error = %v", err)
	}

	if err := claimService.UpdateClaimStatus(context.Background(), created.ID, domain.UpdateClaimStatusRequest{
		Status: domain.ClaimStatusCompleted,
	}); err != nil {
		t.Fatalf("UpdateClaimStatus() error = %v", err)
	}

	// the new status must be visible on the next read
	claims, err := claimService.GetClaims(context.Background(), "")
	if err != nil {
		t.Fatalf("GetClaims() error = %v", err)
	}
	if len(claims) != 1 {
		t.Fatalf("GetClaims() returned %d claims, want 1", len(claims))
	}
	if claims[0].Status != domain.ClaimStatusCompleted {
		t.Errorf("claim status = %q, want %q", claims[0].Status, domain.ClaimStatusCompleted)
	}

	// transitions are unconstrained, Completed may go back to Pending
	if err := claimService.UpdateClaimStatus(context.Background(), created.ID, domain.UpdateClaimStatusRequest{
		Status: domain.ClaimStatusPending,
	}); err != nil {
		t.Fatalf("UpdateClaimStatus() back to Pending error = %v", err)
	}
}

func TestClaimService_UpdateClaimStatus_NotFound(t *testing.T) {
	db := newTestDB(t)
	claimService := NewClaimService(NewClaimRepository(db))

	err := claimService.UpdateClaimStatus(context.Background(), 9999, domain.UpdateClaimStatusRequest{
		Status: domain.ClaimStatusCancelled,
	})
	if err != domain.ErrClaimNotFound {
		t.Errorf("UpdateClaimStatus() error = %v, want %v", err, domain.ErrClaimNotFound)
	}
}

func TestClaimService_GetClaims_StatusFilter(t *testing.T) {
	db := newTestDB(t)
	claimService := NewClaimService(NewClaimRepository(db))

	first, err := claimService.CreateClaim(context.Background(), domain.CreateClaimRequest{FoodID: 1, ReceiverID: 1})
	if err != nil {
		t.Fatalf("CreateClaim() error = %v", err)
	}
	if _, err := claimService.CreateClaim(context.Background(), domain.CreateClaimRequest{FoodID: 2, ReceiverID: 2}); err != nil {
		t.Fatalf("CreateClaim() error = %v", err)
	}
	if err := claimService.UpdateClaimStatus(context.Background(), first.ID, domain.UpdateClaimStatusRequest{
		Status: domain.ClaimStatusCompleted,
	}); err != nil {
		t.Fatalf("UpdateClaimStatus() error = %v", err)
	}

	tests := []struct {
		name      string
		status    string
		wantCount int
		wantErr   error
	}{
		{name: "pending only", status: "Pending", wantCount: 1},
		{name: "completed only", status: "Completed", wantCount: 1},
		{name: "cancelled empty", status: "Cancelled", wantCount: 0},
		{name: "all keyword", status: "All", wantCount: 2},
		{name: "no filter", status: "", wantCount: 2},
		{name: "junk status", status: "Bogus", wantErr: domain.ErrInvalidClaimStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := claimService.GetClaims(context.Background(), tt.status)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("GetClaims(%q) error = %v, wantErr %v", tt.status, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("GetClaims(%q) error = %v", tt.status, err)
			}
			if len(claims) != tt.wantCount {
				t.Errorf("GetClaims(%q) returned %d claims, want %d", tt.status, len(claims), tt.wantCount)
			}
		})
	}
}
