package game

import "strconv"

type Player uint8

const (
	NoPlayer Player = iota
	PlayerOne
	PlayerTwo
)

// Player to move after this one, PlayerOne opens the game
func (p Player) Next() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Opponent of a real player, NoPlayer has none
func (p Player) Opponent() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return NoPlayer
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "x"
	case PlayerTwo:
		return "o"
	}
	return "-"
}

// Cell index of a move, meaning depends on the game
type Move int

const NoMove Move = -1

func (m Move) String() string {
	if m == NoMove {
		return "none"
	}
	return strconv.Itoa(int(m))
}

// Contract for a two player, perfect information, zero-sum game,
// results are on the [0, 1] scale
type State[S any] interface {
	// Deep copy, shares no memory with the receiver
	Clone() S
	// Play a legal move for PlayerJustMoved().Next()
	DoMove(Move)
	// Legal moves, empty iff the game is over
	Moves() []Move
	// 1 win, 0 loss, 0.5 draw, from the perspective of given player
	Result(Player) float64
	PlayerJustMoved() Player
}

// Optional fast path, appends the legal moves to dst
type MoveAppender interface {
	AppendMoves(dst []Move) []Move
}

// Fill dst with the legal moves of s, reusing its storage when possible
func AppendMoves[S State[S]](s S, dst []Move) []Move {
	if a, ok := any(s).(MoveAppender); ok {
		return a.AppendMoves(dst)
	}
	return append(dst, s.Moves()...)
}
