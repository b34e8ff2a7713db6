package sim

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed level plans. Use errors.Is to test for them.
var (
	ErrEmptyPlan       = errors.New("empty level plan")
	ErrRaggedRow       = errors.New("row width differs from first row")
	ErrUnknownChar     = errors.New("unknown level character")
	ErrNoPlayer        = errors.New("level has no player spawn")
	ErrMultiplePlayers = errors.New("level has more than one player spawn")
)

// LevelError describes where a plan failed to parse.
// Row and Col are zero-based; they are -1 when the error is not tied to a cell.
type LevelError struct {
	Row  int
	Col  int
	Char rune
	Err  error
}

func (e *LevelError) Error() string {
	switch {
	case e.Row < 0:
		return fmt.Sprintf("level: %v", e.Err)
	case e.Col < 0:
		return fmt.Sprintf("level: row %d: %v", e.Row+1, e.Err)
	case e.Char != 0:
		return fmt.Sprintf("level: row %d col %d: %v %q", e.Row+1, e.Col+1, e.Err, e.Char)
	default:
		return fmt.Sprintf("level: row %d col %d: %v", e.Row+1, e.Col+1, e.Err)
	}
}

func (e *LevelError) Unwrap() error {
	return e.Err
}
