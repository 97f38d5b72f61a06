// file: database/question_store.go
package database

import (
	"errors"
	"fmt"

	"github.com/tom-sartori/ChemistryDeathRace-api/models"
	"github.com/tom-sartori/ChemistryDeathRace-api/services"
	"gorm.io/gorm"
)

// QuestionStore 题库存储的 GORM 实现，满足 services.QuestionStore
type QuestionStore struct {
	db *gorm.DB
}

func NewQuestionStore(db *gorm.DB) *QuestionStore {
	return &QuestionStore{db: db}
}

func (s *QuestionStore) FindByID(id string) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %s: %w", id, services.ErrNotFound)
		}
		return nil, err
	}
	return &question, nil
}

// ListAll 按名称排序返回全部题目
func (s *QuestionStore) ListAll() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("name asc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionStore) ListByDifficulty(difficulty string) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("difficulty = ?", difficulty).Order("name asc").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionStore) ListByDifficultyAndCategory(difficulty, category string) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("difficulty = ? AND category = ?", difficulty, category).
		Order("name asc").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionStore) Persist(question *models.Question) error {
	return s.db.Create(question).Error
}

func (s *QuestionStore) Update(question *models.Question) error {
	return s.db.Save(question).Error
}

func (s *QuestionStore) DeleteByID(id string) error {
	result := s.db.Delete(&models.Question{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("question %s: %w", id, services.ErrNotFound)
	}
	return nil
}

// Categories 全部去重后的分类
func (s *QuestionStore) Categories() ([]string, error) {
	var categories []string
	err := s.db.Model(&models.Question{}).Distinct().Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// CategoriesByDifficulty 某难度下去重后的分类
func (s *QuestionStore) CategoriesByDifficulty(difficulty string) ([]string, error) {
	var categories []string
	err := s.db.Model(&models.Question{}).
		Where("difficulty = ?", difficulty).
		Distinct().
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Difficulties 全部去重后的难度
func (s *QuestionStore) Difficulties() ([]string, error) {
	var difficulties []string
	err := s.db.Model(&models.Question{}).Distinct().Pluck("difficulty", &difficulties).Error
	if err != nil {
		return nil, err
	}
	return difficulties, nil
}

// RenameCategory 批量改写某难度下的分类标签，返回受影响的行数。
// 单条 UPDATE 语句在 MySQL 上本身就是原子的，失败重试等价于空操作。
func (s *QuestionStore) RenameCategory(difficulty, oldValue, newValue string) (int64, error) {
	result := s.db.Model(&models.Question{}).
		Where("difficulty = ? AND category = ?", difficulty, oldValue).
		Update("category", newValue)
	return result.RowsAffected, result.Error
}

// RenameDifficulty 批量改写难度标签，返回受影响的行数
func (s *QuestionStore) RenameDifficulty(oldValue, newValue string) (int64, error) {
	result := s.db.Model(&models.Question{}).
		Where("difficulty = ?", oldValue).
		Update("difficulty", newValue)
	return result.RowsAffected, result.Error
}
