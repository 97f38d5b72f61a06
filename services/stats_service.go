// file: services/stats_service.go
package services

import (
	"fmt"
)

// QuestionStat 单个题目的答题正确率
type QuestionStat struct {
	QuestionID string
	Name       string
	Difficulty string
	Percentage float64
}

// StatsService 对全量对局做只读聚合，不持有任何状态
type StatsService struct {
	games     GameStore
	questions QuestionStore
}

func NewStatsService(games GameStore, questions QuestionStore) *StatsService {
	return &StatsService{games: games, questions: questions}
}

// PercentageCorrect 单个题目的答题正确率。
// 该题没有任何作答时返回 NaN，调用方应视为"暂无数据"而不是 0。
func (s *StatsService) PercentageCorrect(questionID string) (float64, error) {
	games, err := s.games.ListAll()
	if err != nil {
		return 0, err
	}
	var correct, total float64
	for _, game := range games {
		for _, answer := range game.Answers {
			if answer.QuestionID != questionID {
				continue
			}
			total++
			if answer.IsCorrect {
				correct++
			}
		}
	}
	return correct / total, nil
}

// PercentageByQuestion 按题目聚合答题正确率，题目名称和难度从题库解析。
// 作答指向的题目已不存在时直接报错而不是静默跳过，
// 否则统计结果对不上真实作答总数。
func (s *StatsService) PercentageByQuestion() ([]QuestionStat, error) {
	games, err := s.games.ListAll()
	if err != nil {
		return nil, err
	}

	type tally struct {
		correct int
		total   int
	}
	var order []string
	tallies := make(map[string]*tally)
	for _, game := range games {
		for _, answer := range game.Answers {
			t, ok := tallies[answer.QuestionID]
			if !ok {
				t = &tally{}
				tallies[answer.QuestionID] = t
				order = append(order, answer.QuestionID)
			}
			t.total++
			if answer.IsCorrect {
				t.correct++
			}
		}
	}

	stats := make([]QuestionStat, 0, len(order))
	for _, id := range order {
		question, err := s.questions.FindByID(id)
		if err != nil {
			return nil, fmt.Errorf("question %s referenced by answers: %w", id, err)
		}
		t := tallies[id]
		stats = append(stats, QuestionStat{
			QuestionID: id,
			Name:       question.Name,
			Difficulty: question.Difficulty,
			Percentage: float64(t.correct) / float64(t.total),
		})
	}
	return stats, nil
}

// GlobalPercentage 全部对局的整体答题正确率。没有任何作答时返回 NaN。
func (s *StatsService) GlobalPercentage() (float64, error) {
	games, err := s.games.ListAll()
	if err != nil {
		return 0, err
	}
	var correct, total float64
	for _, game := range games {
		for _, answer := range game.Answers {
			total++
			if answer.IsCorrect {
				correct++
			}
		}
	}
	return correct / total, nil
}

// AverageDuration 已结束对局的平均时长（毫秒）。
// 没有已结束的对局时返回 0：尚未有人玩完是正常的稳态，不是"无数据"。
func (s *StatsService) AverageDuration() (float64, error) {
	games, err := s.games.ListAll()
	if err != nil {
		return 0, err
	}
	var totalMs int64
	var closed int
	for _, game := range games {
		if game.EndedAt == nil {
			continue
		}
		totalMs += game.EndedAt.Sub(game.StartedAt).Milliseconds()
		closed++
	}
	if closed == 0 {
		return 0, nil
	}
	return float64(totalMs) / float64(closed), nil
}

// AverageDiceSize 全部对局（含进行中）的平均骰子面数，空表返回 0
func (s *StatsService) AverageDiceSize() (float64, error) {
	games, err := s.games.ListAll()
	if err != nil {
		return 0, err
	}
	if len(games) == 0 {
		return 0, nil
	}
	var total int
	for _, game := range games {
		total += game.DiceSize
	}
	return float64(total) / float64(len(games)), nil
}

// AveragePlayers 全部对局（含进行中）的平均玩家数，空表返回 0
func (s *StatsService) AveragePlayers() (float64, error) {
	games, err := s.games.ListAll()
	if err != nil {
		return 0, err
	}
	if len(games) == 0 {
		return 0, nil
	}
	var total int
	for _, game := range games {
		total += game.NumberOfPlayers
	}
	return float64(total) / float64(len(games)), nil
}

// MostPlayedDifficulty 出现次数最多的难度。
// 并列时取字典序最小的标签保证结果稳定，空表返回空串。
func (s *StatsService) MostPlayedDifficulty() (string, error) {
	games, err := s.games.ListAll()
	if err != nil {
		return "", err
	}
	counts := make(map[string]int)
	for _, game := range games {
		counts[game.Difficulty]++
	}
	best := ""
	bestCount := 0
	for difficulty, count := range counts {
		if count > bestCount || (count == bestCount && difficulty < best) {
			best = difficulty
			bestCount = count
		}
	}
	return best, nil
}
