package bench

import (
	"sync"

	"github.com/IlikeChooros/go-uct/pkg/game"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

func (r VersusMatchResult) String() string {
	switch r {
	case VersusPl1Win:
		return "player1"
	case VersusPl2Win:
		return "player2"
	}
	return "draw"
}

// Accumulated results of the arena, shared by all workers
type VersusArenaStats struct {
	mu               sync.Mutex
	p1Wins           int
	p2Wins           int
	draws            int
	firstToMoveWins  int
	secondToMoveWins int
	fingerprints     map[uint64]struct{}
	p1Name           string
	p2Name           string
}

// Forget every recorded game
func (vas *VersusArenaStats) reset() {
	vas.mu.Lock()
	defer vas.mu.Unlock()

	vas.p1Wins, vas.p2Wins, vas.draws = 0, 0, 0
	vas.firstToMoveWins, vas.secondToMoveWins = 0, 0
	vas.fingerprints = make(map[uint64]struct{})
	vas.p1Name, vas.p2Name = "", ""
}

// Record a finished game, returns the totals after it
func (vas *VersusArenaStats) record(info VersusWorkerInfo, outcome GameOutcome, fingerprint uint64) (p1, p2, draws int) {
	vas.mu.Lock()
	defer vas.mu.Unlock()

	result := info.Result
	vas.p1Name, vas.p2Name = info.P1Name, info.P2Name

	switch result {
	case VersusPl1Win:
		vas.p1Wins++
	case VersusPl2Win:
		vas.p2Wins++
	default:
		vas.draws++
	}

	if !outcome.IsDraw {
		if outcome.FirstPlayerWon {
			vas.firstToMoveWins++
		} else {
			vas.secondToMoveWins++
		}
	}

	if vas.fingerprints == nil {
		vas.fingerprints = make(map[uint64]struct{})
	}
	vas.fingerprints[fingerprint] = struct{}{}
	return vas.p1Wins, vas.p2Wins, vas.draws
}

func (vas *VersusArenaStats) Total() int {
	vas.mu.Lock()
	defer vas.mu.Unlock()
	return vas.p1Wins + vas.p2Wins + vas.draws
}

func (vas *VersusArenaStats) P1Wins() int {
	vas.mu.Lock()
	defer vas.mu.Unlock()
	return vas.p1Wins
}

func (vas *VersusArenaStats) P2Wins() int {
	vas.mu.Lock()
	defer vas.mu.Unlock()
	return vas.p2Wins
}

func (vas *VersusArenaStats) Draws() int {
	vas.mu.Lock()
	defer vas.mu.Unlock()
	return vas.draws
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	vas.mu.Lock()
	defer vas.mu.Unlock()
	return vas.firstToMoveWins
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	vas.mu.Lock()
	defer vas.mu.Unlock()
	return vas.secondToMoveWins
}

// Number of distinct move sequences played
func (vas *VersusArenaStats) UniqueGames() int {
	vas.mu.Lock()
	defer vas.mu.Unlock()
	return len(vas.fingerprints)
}

// Names of the players of the recorded games, empty before the first one
func (vas *VersusArenaStats) Names() (p1, p2 string) {
	vas.mu.Lock()
	defer vas.mu.Unlock()
	return vas.p1Name, vas.p2Name
}

type VersusWorkerInfo struct {
	WorkerID      int
	GameIndex     int
	Moves         []game.Move
	GameMoveNum   int
	Result        VersusMatchResult
	P1WentFirst   bool
	FinishedGames int
	P1Wins        int
	P2Wins        int
	Draws         int
	P1Name        string
	P2Name        string
}

// represents result from the first-player's perspective in a single game
type GameOutcome struct {
	FirstPlayerWon bool
	IsDraw         bool
}

// maps a game outcome to which agent won, given player assignments
func toAgentResult(outcome GameOutcome, p1WentFirst bool) VersusMatchResult {
	if outcome.IsDraw {
		return VersusDraw
	}

	if p1WentFirst == outcome.FirstPlayerWon {
		return VersusPl1Win
	}
	return VersusPl2Win
}
