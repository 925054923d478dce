package simulator

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/wincounter/wins"
)

// Contest plays one contest and reports who placed first.
type Contest interface {
	Play(rng *rand.Rand) wins.Flag
}

// ContestFunc adapts a function to the Contest interface.
type ContestFunc func(rng *rand.Rand) wins.Flag

// Play calls f(rng).
func (f ContestFunc) Play(rng *rand.Rand) wins.Flag {
	return f(rng)
}

// Dice is a contest where every player rolls one die with Faces sides and
// the highest roll wins. Equal high rolls share first place.
type Dice struct {
	Players int
	Faces   int
}

// Validate checks the dice can be rolled and the players fit in a flag.
func (d Dice) Validate() error {
	if d.Players < 1 || d.Players > wins.MaxPlayers {
		return fmt.Errorf("dice: players must be between 1 and %d, got %d", wins.MaxPlayers, d.Players)
	}
	if d.Faces < 1 {
		return fmt.Errorf("dice: faces must be positive, got %d", d.Faces)
	}
	return nil
}

// Play rolls for every player.
func (d Dice) Play(rng *rand.Rand) wins.Flag {
	var scores [wins.MaxPlayers]int
	n := min(d.Players, wins.MaxPlayers)
	for i := range n {
		scores[i] = rng.IntN(d.Faces) + 1
	}
	return Winners(scores[:n])
}

// Winners returns the flag of every index holding the highest score.
// Scores past wins.MaxPlayers are ignored.
func Winners(scores []int) wins.Flag {
	if len(scores) > wins.MaxPlayers {
		scores = scores[:wins.MaxPlayers]
	}
	if len(scores) == 0 {
		return 0
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s > best {
			best = s
		}
	}

	var flag wins.Flag
	for i, s := range scores {
		if s == best {
			flag |= wins.FromIndex(i)
		}
	}
	return flag
}
