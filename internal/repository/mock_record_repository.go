package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/webaplicationjsx/warehouse-backend/internal/model"
)

// MockRecordRepository is a mock implementation of RecordRepository for testing purposes.
type MockRecordRepository struct {
	mu             sync.Mutex
	Records        map[model.Category][]*model.Record // Records per category in insertion order
	LastInsertedID map[model.Category]int              // To simulate auto-increment behavior per table
	Err            error                               // Returned by every method when set
}

// NewMockRecordRepository creates a new instance of MockRecordRepository.
func NewMockRecordRepository() *MockRecordRepository {
	return &MockRecordRepository{
		Records:        make(map[model.Category][]*model.Record),
		LastInsertedID: make(map[model.Category]int),
	}
}

// AddRecord is a mock implementation of AddRecord method.
func (m *MockRecordRepository) AddRecord(ctx context.Context, category model.Category, data json.RawMessage) (*model.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if _, err := category.Table(); err != nil {
		return nil, err
	}

	m.LastInsertedID[category]++
	record := &model.Record{
		ID:        m.LastInsertedID[category],
		Data:      append(json.RawMessage(nil), data...),
		CreatedAt: time.Now(),
	}
	m.Records[category] = append(m.Records[category], record)

	stored := *record
	return &stored, nil
}

// GetAllRecords is a mock implementation of GetAllRecords method.
func (m *MockRecordRepository) GetAllRecords(ctx context.Context, category model.Category) ([]*model.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if _, err := category.Table(); err != nil {
		return nil, err
	}

	stored := m.Records[category]
	records := make([]*model.Record, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		record := *stored[i]
		records = append(records, &record)
	}

	return records, nil
}
