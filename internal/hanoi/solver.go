package hanoi

import (
	"fmt"
	"iter"
)

// Move transfers the top disk between two towers, by index.
type Move struct {
	From, To int
}

func (m Move) String() string { return fmt.Sprintf("%d->%d", m.From+1, m.To+1) }

// Solve yields the classical 2^n-1 moves that carry n disks from source to
// target using buffer. The sequence can be ranged over repeatedly and stops
// as soon as the consumer does.
func Solve(n, source, target, buffer int) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		solve(n, source, target, buffer, yield)
	}
}

func solve(n, source, target, buffer int, yield func(Move) bool) bool {
	if n <= 0 {
		return true
	}
	return solve(n-1, source, buffer, target, yield) &&
		yield(Move{From: source, To: target}) &&
		solve(n-1, buffer, target, source, yield)
}
