package export

import (
	"FoodShare-Backend/internal/utils/storage"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type (
	ExportService interface {
		ExportProviders(ctx context.Context) ([]byte, error)
		ExportListings(ctx context.Context) ([]byte, error)
		ExportClaims(ctx context.Context) ([]byte, error)
	}

	exportService struct {
		exportRepository ExportRepository
		s3               storage.AwsS3
	}
)

func NewExportService(exportRepository ExportRepository, s3 storage.AwsS3) ExportService {
	return &exportService{
		exportRepository: exportRepository,
		s3:               s3,
	}
}

func (s *exportService) ExportProviders(ctx context.Context) ([]byte, error) {
	providers, err := s.exportRepository.GetAllProviders(ctx)
	if err != nil {
		return nil, err
	}

	records := [][]string{
		{"provider_id", "name", "type", "address", "city", "contact"},
	}
	for _, p := range providers {
		records = append(records, []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Name,
			p.Type,
			p.Address,
			p.City,
			p.Contact,
		})
	}

	data, err := writeCSV(records)
	if err != nil {
		return nil, err
	}

	s.archive(ctx, "providers", data)
	return data, nil
}

func (s *exportService) ExportListings(ctx context.Context) ([]byte, error) {
	listings, err := s.exportRepository.GetAllListings(ctx)
	if err != nil {
		return nil, err
	}

	records := [][]string{
		{"food_id", "food_name", "quantity", "expiry_date", "provider_id", "provider_type", "location", "food_type", "meal_type"},
	}
	for _, l := range listings {
		records = append(records, []string{
			strconv.FormatUint(uint64(l.ID), 10),
			l.FoodName,
			strconv.Itoa(l.Quantity),
			l.ExpiryDate.Format("2006-01-02"),
			strconv.FormatUint(uint64(l.ProviderID), 10),
			l.ProviderType,
			l.Location,
			l.FoodType,
			l.MealType,
		})
	}

	data, err := writeCSV(records)
	if err != nil {
		return nil, err
	}

	s.archive(ctx, "food_listings", data)
	return data, nil
}

func (s *exportService) ExportClaims(ctx context.Context) ([]byte, error) {
	claims, err := s.exportRepository.GetAllClaims(ctx)
	if err != nil {
		return nil, err
	}

	records := [][]string{
		{"claim_id", "food_id", "receiver_id", "status", "timestamp"},
	}
	for _, c := range claims {
		records = append(records, []string{
			strconv.FormatUint(uint64(c.ID), 10),
			strconv.FormatUint(uint64(c.FoodID), 10),
			strconv.FormatUint(uint64(c.ReceiverID), 10),
			c.Status,
			c.Timestamp.Format("2006-01-02 15:04:05"),
		})
	}

	data, err := writeCSV(records)
	if err != nil {
		return nil, err
	}

	s.archive(ctx, "claims", data)
	return data, nil
}

func writeCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// archive keeps a copy of the export in S3 when a bucket is configured.
// Failures are logged, the download itself is never blocked by them.
func (s *exportService) archive(ctx context.Context, table string, data []byte) {
	if s.s3 == nil || !s.s3.Enabled() {
		return
	}

	key := fmt.Sprintf("exports/%s-%s-%s.csv", table, time.Now().Format("20060102"), uuid.NewString())
	if _, err := s.s3.UploadObject(ctx, key, data, "text/csv"); err != nil {
		log.Printf("failed to archive %s export to S3: %v", table, err)
	}
}
