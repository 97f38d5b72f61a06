// file: services/question_service.go
package services

import (
	"fmt"
	"os"
	"strconv"

	"github.com/tom-sartori/ChemistryDeathRace-api/models"
)

// DefaultMaxCategory 每个难度下允许的最大分类数
const DefaultMaxCategory = 6

// MaxNumberOfPropositions 每道题允许的最大选项数
const MaxNumberOfPropositions = 4

// QuestionStore 题库存储接口，GORM 实现见 database 包
type QuestionStore interface {
	FindByID(id string) (*models.Question, error)
	ListAll() ([]models.Question, error)
	ListByDifficulty(difficulty string) ([]models.Question, error)
	ListByDifficultyAndCategory(difficulty, category string) ([]models.Question, error)
	Persist(question *models.Question) error
	Update(question *models.Question) error
	DeleteByID(id string) error
	Categories() ([]string, error)
	CategoriesByDifficulty(difficulty string) ([]string, error)
	Difficulties() ([]string, error)
	RenameCategory(difficulty, oldValue, newValue string) (int64, error)
	RenameDifficulty(oldValue, newValue string) (int64, error)
}

type QuestionService struct {
	store       QuestionStore
	maxCategory int
}

func NewQuestionService(store QuestionStore) *QuestionService {
	maxCategory := DefaultMaxCategory
	if v := os.Getenv("CDR_MAX_CATEGORY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxCategory = n
		}
	}
	return &QuestionService{store: store, maxCategory: maxCategory}
}

// Validate 校验题目。合法的题目必须：
// - 有名称
// - 有分类，且分类在对应难度下可用（每个难度最多 maxCategory 个分类）
// - 有 1 到 4 个选项
// - 恰好有一个正确选项
// 校验按顺序短路，返回第一个失败原因。
func (s *QuestionService) Validate(question *models.Question) error {
	if question.Name == "" {
		return &ValidationError{Reason: "name is required"}
	}
	if question.Category == "" {
		return &ValidationError{Reason: "category is required"}
	}
	ok, err := s.isCategoryValid(question.Difficulty, question.Category)
	if err != nil {
		return err
	}
	if !ok {
		return &ValidationError{Reason: "category is not valid"}
	}
	if len(question.Propositions) < 1 || len(question.Propositions) > MaxNumberOfPropositions {
		return &ValidationError{Reason: "number of propositions must be between 1 and 4"}
	}
	correct := 0
	for _, proposition := range question.Propositions {
		if proposition.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return &ValidationError{Reason: "there must be exactly one correct proposition"}
	}
	return nil
}

// isCategoryValid 检查分类在该难度下是否可用：
// 分类数未达到上限时任何新分类都可以建立，达到上限后只接受已有分类。
// 先读后判，并发创建可能同时抢占最后一个名额，属于已知限制。
func (s *QuestionService) isCategoryValid(difficulty, category string) (bool, error) {
	existing, err := s.store.CategoriesByDifficulty(difficulty)
	if err != nil {
		return false, err
	}
	if len(existing) < s.maxCategory {
		return true, nil
	}
	for _, c := range existing {
		if c == category {
			return true, nil
		}
	}
	return false, nil
}

// Create 校验通过后持久化题目
func (s *QuestionService) Create(question *models.Question) error {
	if err := s.Validate(question); err != nil {
		return err
	}
	return s.store.Persist(question)
}

// Update 校验通过后更新题目
func (s *QuestionService) Update(question *models.Question) error {
	if err := s.Validate(question); err != nil {
		return err
	}
	return s.store.Update(question)
}

func (s *QuestionService) Get(id string) (*models.Question, error) {
	return s.store.FindByID(id)
}

func (s *QuestionService) Delete(id string) error {
	return s.store.DeleteByID(id)
}

// List 按名称排序返回所有题目
func (s *QuestionService) List() ([]models.Question, error) {
	return s.store.ListAll()
}

func (s *QuestionService) ListByDifficulty(difficulty string) ([]models.Question, error) {
	return s.store.ListByDifficulty(difficulty)
}

func (s *QuestionService) ListByDifficultyAndCategory(difficulty, category string) ([]models.Question, error) {
	return s.store.ListByDifficultyAndCategory(difficulty, category)
}

// Categories 返回全部去重后的分类
func (s *QuestionService) Categories() ([]string, error) {
	return s.store.Categories()
}

func (s *QuestionService) CategoriesByDifficulty(difficulty string) ([]string, error) {
	return s.store.CategoriesByDifficulty(difficulty)
}

func (s *QuestionService) Difficulties() ([]string, error) {
	return s.store.Difficulties()
}

// AvailableDifficulties 返回分类已满的难度列表，只有这些难度可以开局
func (s *QuestionService) AvailableDifficulties() ([]string, error) {
	difficulties, err := s.store.Difficulties()
	if err != nil {
		return nil, err
	}
	available := make([]string, 0, len(difficulties))
	for _, difficulty := range difficulties {
		categories, err := s.store.CategoriesByDifficulty(difficulty)
		if err != nil {
			return nil, err
		}
		if len(categories) == s.maxCategory {
			available = append(available, difficulty)
		}
	}
	return available, nil
}

// RenameCategory 重命名某难度下的一个分类，作用于所有匹配的题目。
// 重命名只改题库里的标签，历史对局按题目 ID 引用，统计不受影响。
func (s *QuestionService) RenameCategory(difficulty, oldValue, newValue string) error {
	if oldValue == newValue {
		return ErrConflictingRename
	}
	affected, err := s.store.RenameCategory(difficulty, oldValue, newValue)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no question with category %q: %w", oldValue, ErrNotFound)
	}
	return nil
}

// RenameDifficulty 重命名一个难度，作用于所有匹配的题目
func (s *QuestionService) RenameDifficulty(oldValue, newValue string) error {
	if oldValue == newValue {
		return ErrConflictingRename
	}
	affected, err := s.store.RenameDifficulty(oldValue, newValue)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no question with difficulty %q: %w", oldValue, ErrNotFound)
	}
	return nil
}
