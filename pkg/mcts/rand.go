package mcts

import (
	"fmt"
	"math/rand"
	"strings"

	mt64 "github.com/bszcz/mt19937_64"
)

// Source of randomness for expansion and rollouts
type RandKind int

const (
	RandDefault RandKind = iota
	RandMT19937
)

func (k RandKind) String() string {
	if k == RandMT19937 {
		return "mt19937"
	}
	return "default"
}

func ParseRandKind(s string) (RandKind, error) {
	switch strings.ToLower(s) {
	case "", "default":
		return RandDefault, nil
	case "mt19937", "mt19937_64":
		return RandMT19937, nil
	}
	return RandDefault, fmt.Errorf("mcts: unknown random source %q", s)
}

func NewRand(kind RandKind, seed int64) *rand.Rand {
	if kind == RandMT19937 {
		src := mt64.New()
		src.Seed(seed)
		return rand.New(src)
	}
	return rand.New(rand.NewSource(seed))
}
