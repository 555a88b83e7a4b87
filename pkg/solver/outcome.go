package solver

import "fmt"

// Outcome is the result of comparing two valid hands
type Outcome int

// Constants for outcome
// The values are the result codes returned by Compare()
const (
	Tie     Outcome = 0
	PlayerA Outcome = 1
	PlayerB Outcome = 2
)

// Invalid is the result code when one or both hands fail validation
const Invalid = -1

// Code returns the integer result code
func (o Outcome) Code() int {
	return int(o)
}

// Reverse swaps the winner, a tie stays a tie
func (o Outcome) Reverse() Outcome {
	switch o {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return o
	}
}

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Tie:
		return "Tie"
	case PlayerA:
		return "Player A wins"
	case PlayerB:
		return "Player B wins"
	default:
		panic(fmt.Sprintf("unknown outcome: %d", o))
	}
}

// compareValues returns PlayerA if a is higher, PlayerB if b is higher, or Tie
func compareValues(a, b int) Outcome {
	switch {
	case a > b:
		return PlayerA
	case b > a:
		return PlayerB
	default:
		return Tie
	}
}
