// file: database/game_store.go
package database

import (
	"errors"
	"fmt"

	"github.com/tom-sartori/ChemistryDeathRace-api/models"
	"github.com/tom-sartori/ChemistryDeathRace-api/services"
	"gorm.io/gorm"
)

// GameStore 对局存储的 GORM 实现，满足 services.GameStore
type GameStore struct {
	db *gorm.DB
}

func NewGameStore(db *gorm.DB) *GameStore {
	return &GameStore{db: db}
}

func (s *GameStore) FindByID(id string) (*models.Game, error) {
	var game models.Game
	if err := s.db.First(&game, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("game %s: %w", id, services.ErrNotFound)
		}
		return nil, err
	}
	return &game, nil
}

func (s *GameStore) ListAll() ([]models.Game, error) {
	var games []models.Game
	if err := s.db.Order("started_at asc").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (s *GameStore) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Game{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GameStore) Persist(game *models.Game) error {
	return s.db.Create(game).Error
}

func (s *GameStore) Update(game *models.Game) error {
	return s.db.Save(game).Error
}
