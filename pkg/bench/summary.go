package bench

import (
	"fmt"
	"io"
	"math"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
	"gopkg.in/yaml.v3"
)

type VersusSummaryInfo struct {
	TotalGames       int     `json:"total_games" yaml:"total_games"`
	P1Wins           int     `json:"player1_wins" yaml:"player1_wins"`
	P2Wins           int     `json:"player2_wins" yaml:"player2_wins"`
	FirstToMoveWins  int     `json:"first_to_move_wins" yaml:"first_to_move_wins"`
	SecondToMoveWins int     `json:"second_to_move_wins" yaml:"second_to_move_wins"`
	Draws            int     `json:"draws" yaml:"draws"`
	UniqueGames      int     `json:"unique_games" yaml:"unique_games"`
	Workers          int     `json:"workers" yaml:"workers"`
	P1Name           string  `json:"player1_name" yaml:"player1_name"`
	P2Name           string  `json:"player2_name" yaml:"player2_name"`
	P1Score          float64 `json:"player1_score" yaml:"player1_score"`
	P1ScoreLow       float64 `json:"player1_score_low" yaml:"player1_score_low"`
	P1ScoreHigh      float64 `json:"player1_score_high" yaml:"player1_score_high"`
	ElapsedMs        int64   `json:"elapsed_ms" yaml:"elapsed_ms"`
}

func (s VersusSummaryInfo) String() string {
	return fmt.Sprintf("games %d %s %d %s %d draws %d score %.3f [%.3f, %.3f] unique %d",
		s.TotalGames, s.P1Name, s.P1Wins, s.P2Name, s.P2Wins, s.Draws,
		s.P1Score, s.P1ScoreLow, s.P1ScoreHigh, s.UniqueGames)
}

func (s VersusSummaryInfo) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// Player 1's score, a draw counting as half a win, with the 95% normal
// approximation interval
func scoreInterval(wins, draws, total int) (score, low, high float64) {
	if total == 0 {
		return 0, 0, 0
	}

	n := float64(total)
	score = (float64(wins) + 0.5*float64(draws)) / n
	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.975)
	delta := z * math.Sqrt(score*(1-score)/n)
	return score, max(0, score-delta), min(1, score+delta)
}

func (va *VersusArena[S]) summary(elapsed time.Duration) VersusSummaryInfo {
	summary := VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		UniqueGames:      va.UniqueGames(),
		Workers:          va.NWorkers,
		ElapsedMs:        elapsed.Milliseconds(),
	}
	summary.P1Name, summary.P2Name = va.Names()
	summary.P1Score, summary.P1ScoreLow, summary.P1ScoreHigh =
		scoreInterval(summary.P1Wins, summary.Draws, summary.TotalGames)
	return summary
}
