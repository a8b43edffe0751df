package rules

import (
	"errors"
	"fmt"
)

type Move uint8

const (
	Stay Move = iota
	Left
	Right
)

func (m Move) Delta() int {
	switch m {
	case Left:
		return -1
	case Right:
		return 1
	}
	return 0
}

func (m Move) String() string {
	switch m {
	case Stay:
		return "S"
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return fmt.Sprintf("Move(%d)", uint8(m))
}

var ErrBadMove = errors.New("bad move")

func ParseMove(str string) (Move, error) {
	switch str {
	case "S", "s", "stay":
		return Stay, nil
	case "L", "l", "left":
		return Left, nil
	case "R", "r", "right":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMove, str)
}
