package testutils

import (
	"errors"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller replays queued results in order and then keeps returning Fallback.
// Every result is clamped into 1..size so a script can say "max" with a large number.
type ScriptedRoller struct {
	mu       sync.Mutex
	queue    []int
	sizes    []int
	Fallback int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller queues values; once they run out every roll returns 1
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{queue: values, Fallback: 1}
}

// Roll returns the next scripted value
func (r *ScriptedRoller) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.New("die size must be positive")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sizes = append(r.sizes, size)
	v := r.Fallback
	if len(r.queue) > 0 {
		v = r.queue[0]
		r.queue = r.queue[1:]
	}
	return clampRoll(v, size), nil
}

// RollN rolls count dice
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Sizes returns the die size of every roll so far
func (r *ScriptedRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.sizes...)
}

// FixedRoller always returns Value clamped to the die size.
// Value 1 makes every chance succeed and every range return its minimum;
// a large Value makes chances below 100% fail and ranges return their maximum.
type FixedRoller struct {
	Value int
}

var _ dice.Roller = (*FixedRoller)(nil)

// Roll returns Value clamped into 1..size
func (r *FixedRoller) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.New("die size must be positive")
	}
	return clampRoll(r.Value, size), nil
}

// RollN rolls count dice
func (r *FixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// FailingRoller returns Err from every roll
type FailingRoller struct {
	Err error
}

var _ dice.Roller = (*FailingRoller)(nil)

// Roll fails
func (r *FailingRoller) Roll(int) (int, error) {
	return 0, r.Err
}

// RollN fails
func (r *FailingRoller) RollN(int, int) ([]int, error) {
	return nil, r.Err
}

func clampRoll(v, size int) int {
	if v < 1 {
		return 1
	}
	if v > size {
		return size
	}
	return v
}
