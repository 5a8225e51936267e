package filestore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"course-booking-api/internal/domain/order"
	"course-booking-api/internal/infra"

	"github.com/google/uuid"
)

type orderItemRecord struct {
	LessonID int64   `json:"lesson_id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int32   `json:"quantity"`
}

type orderRecord struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Phone     string            `json:"phone"`
	Items     []orderItemRecord `json:"items"`
	Total     float64           `json:"total"`
	CreatedAt time.Time         `json:"created_at"`
}

// OrderStore persists orders as a JSON array in a single file. Writes go
// through a temp file and rename so a crash mid-write never corrupts the
// list. A missing or empty file reads as an empty list, never an error.
type OrderStore struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

func NewOrderStore(path string, logger *slog.Logger) (*OrderStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, infra.WrapRepoErr(logger, infra.KindDBFailure, "failed to create orders directory", err)
		}
	}
	return &OrderStore{path: path, logger: logger}, nil
}

func (s *OrderStore) Append(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	items := o.Items()
	itemRecords := make([]orderItemRecord, len(items))
	for i, it := range items {
		itemRecords[i] = orderItemRecord(it)
	}
	records = append(records, orderRecord{
		ID:        o.ID(),
		Name:      o.Name(),
		Phone:     o.Phone(),
		Items:     itemRecords,
		Total:     o.Total(),
		CreatedAt: o.CreatedAt(),
	})

	return s.save(records)
}

func (s *OrderStore) ListAll(_ context.Context) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	orders := make([]*order.Order, len(records))
	for i, rec := range records {
		items := make([]order.LineItem, len(rec.Items))
		for j, it := range rec.Items {
			items[j] = order.LineItem(it)
		}
		orders[i] = order.ReconstructOrder(rec.ID, rec.Name, rec.Phone, items, rec.Total, rec.CreatedAt)
	}
	return orders, nil
}

func (s *OrderStore) load() ([]orderRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to read orders file", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []orderRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to decode orders file", err)
	}
	return records, nil
}

func (s *OrderStore) save(records []orderRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to encode orders", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".orders-*.json")
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to create temp file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to write orders file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to close orders file", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to replace orders file", err)
	}
	return nil
}
