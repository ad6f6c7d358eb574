package db

import (
	"github.com/taskaroo/taskaroo/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) ListByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("id ASC").Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) ListByUserAndIDs(userID uint, ids []uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if len(ids) == 0 {
		return habits, nil
	}
	if err := repo.database.Where("user_id = ? AND id IN ?", userID, ids).Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) ExistsByUserAndName(userID uint, name string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Habit{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *HabitRepository) FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error) {
	habit := models.Habit{}
	result := repo.database.
		Where("id = ? AND user_id = ?", habitID, userID).
		Limit(1).
		Find(&habit)
	if result.Error != nil {
		return models.Habit{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Habit{}, false, nil
	}
	return habit, true, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

func (repo *HabitRepository) Save(habit *models.Habit) error {
	return repo.database.Save(habit).Error
}

func (repo *HabitRepository) Delete(habit *models.Habit) error {
	return repo.database.Delete(habit).Error
}
