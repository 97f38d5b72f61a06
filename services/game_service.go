// file: services/game_service.go
package services

import (
	"time"

	"github.com/tom-sartori/ChemistryDeathRace-api/models"
)

// GameStore 对局存储接口，GORM 实现见 database 包
type GameStore interface {
	FindByID(id string) (*models.Game, error)
	ListAll() ([]models.Game, error)
	Count() (int64, error)
	Persist(game *models.Game) error
	Update(game *models.Game) error
}

type GameService struct {
	store GameStore
}

func NewGameService(store GameStore) *GameService {
	return &GameService{store: store}
}

// Open 开启一局新游戏：答案列表置空，结束时间置空。
// 客户端未提供开始时间时以当前时间为准。
func (s *GameService) Open(game *models.Game) error {
	if game.StartedAt.IsZero() {
		game.StartedAt = time.Now()
	}
	game.Answers = []models.Answer{}
	game.EndedAt = nil
	return s.store.Persist(game)
}

// AddAnswer 向进行中的对局追加一条作答记录。
// 不校验 QuestionID 是否指向存在的题目，悬空引用在统计读取时处理。
func (s *GameService) AddAnswer(gameID string, answer models.Answer) (*models.Game, error) {
	game, err := s.store.FindByID(gameID)
	if err != nil {
		return nil, err
	}
	game.Answers = append(game.Answers, answer)
	if err := s.store.Update(game); err != nil {
		return nil, err
	}
	return game, nil
}

// Close 结束对局。重复关闭会覆盖结束时间，用于幂等重试，不视为错误。
func (s *GameService) Close(gameID string) (*models.Game, error) {
	game, err := s.store.FindByID(gameID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	game.EndedAt = &now
	if err := s.store.Update(game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *GameService) Get(id string) (*models.Game, error) {
	return s.store.FindByID(id)
}

func (s *GameService) List() ([]models.Game, error) {
	return s.store.ListAll()
}

// Count 已记录的对局总数
func (s *GameService) Count() (int64, error) {
	return s.store.Count()
}
