package service

import (
	"context"

	"github.com/webaplicationjsx/warehouse-backend/internal/dto"
	"github.com/webaplicationjsx/warehouse-backend/internal/model"
	"github.com/webaplicationjsx/warehouse-backend/internal/repository"
	"github.com/webaplicationjsx/warehouse-backend/pkg/validation"
)

// RecordService defines the interface for schedule, shipment and miscellaneous records.
type RecordService interface {
	// AddRecord stores the payload's data under the category and returns the stored record.
	AddRecord(context.Context, model.Category, *dto.RecordCreateDTO) (*dto.RecordDTO, error)

	// GetAllRecords lists every record of the category, newest first.
	GetAllRecords(context.Context, model.Category) ([]*dto.RecordDTO, error)
}

// RecordServiceImpl implements the RecordService interface.
type RecordServiceImpl struct {
	recordRepository repository.RecordRepository
}

// NewRecordService creates a new RecordServiceImpl instance with the provided recordRepository.
func NewRecordService(recordRepository repository.RecordRepository) *RecordServiceImpl {
	return &RecordServiceImpl{
		recordRepository: recordRepository,
	}
}

func (rs *RecordServiceImpl) AddRecord(ctx context.Context, category model.Category, recordCreate *dto.RecordCreateDTO) (*dto.RecordDTO, error) {
	if _, err := category.Table(); err != nil {
		return nil, err
	}
	if err := validation.ValidateData(recordCreate.Data); err != nil {
		return nil, err
	}

	record, err := rs.recordRepository.AddRecord(ctx, category, recordCreate.Data)
	if err != nil {
		return nil, err
	}

	return toRecordDTO(record), nil
}

func (rs *RecordServiceImpl) GetAllRecords(ctx context.Context, category model.Category) ([]*dto.RecordDTO, error) {
	records, err := rs.recordRepository.GetAllRecords(ctx, category)
	if err != nil {
		return nil, err
	}

	recordDTOs := make([]*dto.RecordDTO, 0, len(records))
	for _, record := range records {
		recordDTOs = append(recordDTOs, toRecordDTO(record))
	}

	return recordDTOs, nil
}

func toRecordDTO(record *model.Record) *dto.RecordDTO {
	return &dto.RecordDTO{
		ID:        record.ID,
		Data:      record.Data,
		CreatedAt: record.CreatedAt,
	}
}
