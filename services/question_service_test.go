// file: services/question_service_test.go
package services

import (
	"fmt"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tom-sartori/ChemistryDeathRace-api/models"
)

// fakeQuestionStore 内存版题库存储，测试专用
type fakeQuestionStore struct {
	questions []models.Question
}

func (f *fakeQuestionStore) FindByID(id string) (*models.Question, error) {
	for i := range f.questions {
		if f.questions[i].ID == id {
			question := f.questions[i]
			return &question, nil
		}
	}
	return nil, fmt.Errorf("question %s: %w", id, ErrNotFound)
}

func (f *fakeQuestionStore) ListAll() ([]models.Question, error) {
	out := make([]models.Question, len(f.questions))
	copy(out, f.questions)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeQuestionStore) ListByDifficulty(difficulty string) ([]models.Question, error) {
	var out []models.Question
	for _, question := range f.questions {
		if question.Difficulty == difficulty {
			out = append(out, question)
		}
	}
	return out, nil
}

func (f *fakeQuestionStore) ListByDifficultyAndCategory(difficulty, category string) ([]models.Question, error) {
	var out []models.Question
	for _, question := range f.questions {
		if question.Difficulty == difficulty && question.Category == category {
			out = append(out, question)
		}
	}
	return out, nil
}

func (f *fakeQuestionStore) Persist(question *models.Question) error {
	if question.ID == "" {
		question.ID = uuid.NewString()
	}
	f.questions = append(f.questions, *question)
	return nil
}

func (f *fakeQuestionStore) Update(question *models.Question) error {
	for i := range f.questions {
		if f.questions[i].ID == question.ID {
			f.questions[i] = *question
			return nil
		}
	}
	return fmt.Errorf("question %s: %w", question.ID, ErrNotFound)
}

func (f *fakeQuestionStore) DeleteByID(id string) error {
	for i := range f.questions {
		if f.questions[i].ID == id {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("question %s: %w", id, ErrNotFound)
}

func (f *fakeQuestionStore) Categories() ([]string, error) {
	return f.distinct(func(q models.Question) (string, bool) { return q.Category, true }), nil
}

func (f *fakeQuestionStore) CategoriesByDifficulty(difficulty string) ([]string, error) {
	return f.distinct(func(q models.Question) (string, bool) {
		return q.Category, q.Difficulty == difficulty
	}), nil
}

func (f *fakeQuestionStore) Difficulties() ([]string, error) {
	return f.distinct(func(q models.Question) (string, bool) { return q.Difficulty, true }), nil
}

func (f *fakeQuestionStore) distinct(field func(models.Question) (string, bool)) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, question := range f.questions {
		value, ok := field(question)
		if !ok {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

func (f *fakeQuestionStore) RenameCategory(difficulty, oldValue, newValue string) (int64, error) {
	var affected int64
	for i := range f.questions {
		if f.questions[i].Difficulty == difficulty && f.questions[i].Category == oldValue {
			f.questions[i].Category = newValue
			affected++
		}
	}
	return affected, nil
}

func (f *fakeQuestionStore) RenameDifficulty(oldValue, newValue string) (int64, error) {
	var affected int64
	for i := range f.questions {
		if f.questions[i].Difficulty == oldValue {
			f.questions[i].Difficulty = newValue
			affected++
		}
	}
	return affected, nil
}

// validQuestion 构造一道通过全部校验的题目
func validQuestion(name, category, difficulty string) models.Question {
	return models.Question{
		Name:       name,
		Category:   category,
		Difficulty: difficulty,
		Propositions: []models.Proposition{
			{Name: "la bonne", IsCorrect: true},
			{Name: "la mauvaise"},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(q *models.Question)
		wantReason string
	}{
		{
			name:   "valid question",
			mutate: func(q *models.Question) {},
		},
		{
			name:       "missing name",
			mutate:     func(q *models.Question) { q.Name = "" },
			wantReason: "name is required",
		},
		{
			name:       "missing category",
			mutate:     func(q *models.Question) { q.Category = "" },
			wantReason: "category is required",
		},
		{
			name:       "no propositions",
			mutate:     func(q *models.Question) { q.Propositions = nil },
			wantReason: "number of propositions must be between 1 and 4",
		},
		{
			name: "too many propositions",
			mutate: func(q *models.Question) {
				q.Propositions = []models.Proposition{
					{Name: "a", IsCorrect: true}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"},
				}
			},
			wantReason: "number of propositions must be between 1 and 4",
		},
		{
			name: "no correct proposition",
			mutate: func(q *models.Question) {
				q.Propositions = []models.Proposition{{Name: "a"}, {Name: "b"}}
			},
			wantReason: "there must be exactly one correct proposition",
		},
		{
			name: "two correct propositions",
			mutate: func(q *models.Question) {
				q.Propositions = []models.Proposition{
					{Name: "a", IsCorrect: true}, {Name: "b", IsCorrect: true},
				}
			},
			wantReason: "there must be exactly one correct proposition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQuestionService(&fakeQuestionStore{})
			question := validQuestion("Quel est le symbole du fer ?", "atomes", "easy")
			tt.mutate(&question)

			err := service.Validate(&question)
			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantReason, validationErr.Reason)
		})
	}
}

func TestValidateCategoryCeiling(t *testing.T) {
	store := &fakeQuestionStore{}
	service := NewQuestionService(store)

	// 填满 easy 难度下的 6 个分类
	categories := []string{"atomes", "liaisons", "solutions", "acides", "gaz", "thermo"}
	for i, category := range categories {
		q := validQuestion(fmt.Sprintf("question %d", i), category, "easy")
		require.NoError(t, service.Create(&q))
	}

	t.Run("seventh distinct category is rejected", func(t *testing.T) {
		q := validQuestion("question 7", "cinema", "easy")
		var validationErr *ValidationError
		require.ErrorAs(t, service.Create(&q), &validationErr)
		assert.Equal(t, "category is not valid", validationErr.Reason)
	})

	t.Run("existing category is still accepted", func(t *testing.T) {
		q := validQuestion("question 8", "atomes", "easy")
		assert.NoError(t, service.Create(&q))
	})

	t.Run("another difficulty is not affected", func(t *testing.T) {
		q := validQuestion("question 9", "cinema", "hard")
		assert.NoError(t, service.Create(&q))
	})
}

func TestRenameCategory(t *testing.T) {
	newStore := func() *fakeQuestionStore {
		return &fakeQuestionStore{questions: []models.Question{
			{ID: "1", Name: "a", Category: "geography", Difficulty: "easy"},
			{ID: "2", Name: "b", Category: "geography", Difficulty: "easy"},
			{ID: "3", Name: "c", Category: "geography", Difficulty: "hard"},
		}}
	}

	t.Run("identical values are rejected whatever the store holds", func(t *testing.T) {
		service := NewQuestionService(newStore())
		err := service.RenameCategory("easy", "geography", "geography")
		assert.ErrorIs(t, err, ErrConflictingRename)

		err = NewQuestionService(&fakeQuestionStore{}).RenameCategory("easy", "geography", "geography")
		assert.ErrorIs(t, err, ErrConflictingRename)
	})

	t.Run("zero match yields not found and leaves the store unchanged", func(t *testing.T) {
		store := newStore()
		service := NewQuestionService(store)
		err := service.RenameCategory("easy", "history", "cinema")
		assert.ErrorIs(t, err, ErrNotFound)
		categories, _ := store.CategoriesByDifficulty("easy")
		assert.Equal(t, []string{"geography"}, categories)
	})

	t.Run("rename rewrites every matching question and only those", func(t *testing.T) {
		store := newStore()
		service := NewQuestionService(store)
		require.NoError(t, service.RenameCategory("easy", "geography", "history"))

		easy, _ := store.CategoriesByDifficulty("easy")
		assert.Equal(t, []string{"history"}, easy)

		// hard 难度下的同名分类不受影响
		hard, _ := store.CategoriesByDifficulty("hard")
		assert.Equal(t, []string{"geography"}, hard)
	})
}

func TestRenameDifficulty(t *testing.T) {
	newStore := func() *fakeQuestionStore {
		return &fakeQuestionStore{questions: []models.Question{
			{ID: "1", Name: "a", Category: "geography", Difficulty: "easy"},
			{ID: "2", Name: "b", Category: "atomes", Difficulty: "easy"},
			{ID: "3", Name: "c", Category: "geography", Difficulty: "hard"},
		}}
	}

	t.Run("identical values are rejected", func(t *testing.T) {
		err := NewQuestionService(newStore()).RenameDifficulty("easy", "easy")
		assert.ErrorIs(t, err, ErrConflictingRename)
	})

	t.Run("zero match yields not found", func(t *testing.T) {
		err := NewQuestionService(newStore()).RenameDifficulty("medium", "normal")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rename rewrites every matching question", func(t *testing.T) {
		store := newStore()
		require.NoError(t, NewQuestionService(store).RenameDifficulty("easy", "beginner"))
		difficulties, _ := store.Difficulties()
		assert.ElementsMatch(t, []string{"beginner", "hard"}, difficulties)
		remaining, _ := store.ListByDifficulty("easy")
		assert.Empty(t, remaining)
	})
}

func TestAvailableDifficulties(t *testing.T) {
	store := &fakeQuestionStore{}
	service := NewQuestionService(store)

	// easy 填满 6 个分类，hard 只有 2 个
	for i, category := range []string{"c1", "c2", "c3", "c4", "c5", "c6"} {
		q := validQuestion(fmt.Sprintf("easy %d", i), category, "easy")
		require.NoError(t, service.Create(&q))
	}
	for i, category := range []string{"c1", "c2"} {
		q := validQuestion(fmt.Sprintf("hard %d", i), category, "hard")
		require.NoError(t, service.Create(&q))
	}

	available, err := service.AvailableDifficulties()
	require.NoError(t, err)
	assert.Equal(t, []string{"easy"}, available)
}

// 完整场景：填满上限 -> 第 7 个分类被拒 -> 重命名后新标签可用
func TestCategoryCeilingLifecycle(t *testing.T) {
	store := &fakeQuestionStore{}
	service := NewQuestionService(store)

	categories := []string{"atomes", "liaisons", "solutions", "acides", "gaz", "thermo"}
	for i, category := range categories {
		q := validQuestion(fmt.Sprintf("question %d", i), category, "easy")
		require.NoError(t, service.Create(&q))
	}

	// 上限已满，cinema 被拒绝
	rejected := validQuestion("rejected", "cinema", "easy")
	assert.Error(t, service.Create(&rejected))

	// 管理员把 thermo 改名为 cinema
	require.NoError(t, service.RenameCategory("easy", "thermo", "cinema"))

	// cinema 现在是已注册分类，题目可以入库
	accepted := validQuestion("accepted", "cinema", "easy")
	assert.NoError(t, service.Create(&accepted))

	// thermo 已让位，重新作为新分类提交会被拒绝：名额仍然是满的
	comeback := validQuestion("comeback", "thermo", "easy")
	var validationErr *ValidationError
	require.ErrorAs(t, service.Create(&comeback), &validationErr)
	assert.Equal(t, "category is not valid", validationErr.Reason)
}
