package bench

import (
	"math/rand"

	"github.com/IlikeChooros/go-uct/pkg/game"
	"github.com/IlikeChooros/go-uct/pkg/mcts"
	"github.com/samber/lo"
)

// Anything that can choose a move in a match, the state given to Move is
// a private copy
type Player[S game.State[S]] interface {
	Name() string
	Move(state S) (game.Move, error)
}

// Creates a fresh player for given game index, so that no game shares
// mutable player state with another
type PlayerFactory[S game.State[S]] func(gameIndex int) Player[S]

// Plays the move recommended by the UCT search
type UCTPlayer[S game.State[S]] struct {
	name   string
	engine *mcts.Engine[S]
}

func NewUCTPlayer[S game.State[S]](name string, opts ...mcts.Option) *UCTPlayer[S] {
	return &UCTPlayer[S]{name: name, engine: mcts.NewEngine[S](opts...)}
}

func (p *UCTPlayer[S]) Name() string {
	return p.name
}

func (p *UCTPlayer[S]) Move(state S) (game.Move, error) {
	return p.engine.Search(state)
}

// Plays a uniformly random legal move
type RandomPlayer[S game.State[S]] struct {
	rand *rand.Rand
}

func NewRandomPlayer[S game.State[S]](seed int64) *RandomPlayer[S] {
	return &RandomPlayer[S]{rand: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer[S]) Name() string {
	return "random"
}

func (p *RandomPlayer[S]) Move(state S) (game.Move, error) {
	moves := state.Moves()
	if len(moves) == 0 {
		return game.NoMove, ErrNoMoves
	}
	return moves[p.rand.Intn(len(moves))], nil
}

// One ply lookahead player: takes a move that wins the game, otherwise
// avoids moves after which the opponent can win at once, otherwise random
type TacticalPlayer[S game.State[S]] struct {
	rand *rand.Rand
}

func NewTacticalPlayer[S game.State[S]](seed int64) *TacticalPlayer[S] {
	return &TacticalPlayer[S]{rand: rand.New(rand.NewSource(seed))}
}

func (p *TacticalPlayer[S]) Name() string {
	return "tactical"
}

func (p *TacticalPlayer[S]) Move(state S) (game.Move, error) {
	moves := state.Moves()
	if len(moves) == 0 {
		return game.NoMove, ErrNoMoves
	}

	mover := state.PlayerJustMoved().Next()
	if mv, ok := lo.Find(moves, func(mv game.Move) bool {
		return winsAfter(state, mv, mover)
	}); ok {
		return mv, nil
	}

	safe := lo.Reject(moves, func(mv game.Move, _ int) bool {
		after := state.Clone()
		after.DoMove(mv)
		return lo.SomeBy(after.Moves(), func(reply game.Move) bool {
			return winsAfter(after, reply, mover.Opponent())
		})
	})
	if len(safe) > 0 {
		return safe[p.rand.Intn(len(safe))], nil
	}
	return moves[p.rand.Intn(len(moves))], nil
}

// Whether playing given move ends the game with a win for given player
func winsAfter[S game.State[S]](state S, mv game.Move, player game.Player) bool {
	after := state.Clone()
	after.DoMove(mv)
	return len(after.Moves()) == 0 && after.Result(player) == 1.0
}
