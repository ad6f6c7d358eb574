package db

import (
	"time"

	"github.com/taskaroo/taskaroo/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyRecordRepository struct {
	database *gorm.DB
}

func NewDailyRecordRepository(database *gorm.DB) *DailyRecordRepository {
	return &DailyRecordRepository{database: database}
}

func (repo *DailyRecordRepository) ListByUserRange(userID uint, rangeStart time.Time, rangeEnd time.Time) ([]models.DailyRecord, error) {
	records := make([]models.DailyRecord, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, rangeStart, rangeEnd).
		Order("date ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *DailyRecordRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyRecord, bool, error) {
	record := models.DailyRecord{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.DailyRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyRecord{}, false, nil
	}
	return record, true, nil
}

// Upsert inserts the record or, when a row for (user_id, date) already exists,
// replaces its completion set and score in a single atomic statement. Two
// concurrent writers race at this statement only; the later replace wins.
func (repo *DailyRecordRepository) Upsert(record *models.DailyRecord) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"completions", "score", "updated_at"}),
	}).Create(record).Error
}
