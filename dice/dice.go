// Package dice implements physical-dice-style random letter
// generation: a fixed set of dice, each with a fixed list of faces,
// rolled and shuffled into board positions.
package dice

import "github.com/domino14/wgs/randsrc"

// Dice holds one die per board position, each rolled to a face and
// the dice themselves shuffled across positions.
type Dice struct {
	dice [][]string

	// positions[i] is the die index currently occupying position i.
	positions []int
	// dieFaces[i] is the currently-rolled face index of the die at
	// position i.
	dieFaces []int

	rng randsrc.Source
}

// New builds a Dice from a list of dice, each a list of face strings,
// and performs the initial roll and shuffle.
func New(dice [][]string, rng randsrc.Source) *Dice {
	if rng == nil {
		rng = randsrc.Global
	}
	d := &Dice{
		dice:      dice,
		positions: make([]int, len(dice)),
		dieFaces:  make([]int, len(dice)),
		rng:       rng,
	}
	d.Roll()
	return d
}

// Clone returns an independent copy of d, sharing the underlying die
// definitions and random source but with its own position/face state.
func (d *Dice) Clone() *Dice {
	return &Dice{
		dice:      d.dice,
		positions: append([]int{}, d.positions...),
		dieFaces:  append([]int{}, d.dieFaces...),
		rng:       d.rng,
	}
}

// GetLetters returns the letter faces currently showing, one per
// board position, in position order.
func (d *Dice) GetLetters() []string {
	out := make([]string, len(d.positions))
	for i := range d.positions {
		out[i] = d.dice[d.positions[i]][d.dieFaces[i]]
	}
	return out
}

// SwapDice exchanges the dice occupying positions i and j.
func (d *Dice) SwapDice(i, j int) {
	d.positions[i], d.positions[j] = d.positions[j], d.positions[i]
	d.dieFaces[i], d.dieFaces[j] = d.dieFaces[j], d.dieFaces[i]
}

// RollOne re-rolls the die occupying position i to a new random face.
func (d *Dice) RollOne(i int) {
	d.dieFaces[i] = d.rng.Intn(len(d.dice[d.positions[i]]))
}

// Roll returns every die to its home position, rerolls each face,
// then reshuffles the dice across positions.
func (d *Dice) Roll() {
	for i := range d.dice {
		d.positions[i] = i
		d.RollOne(i)
	}
	d.scramble()
}

func (d *Dice) scramble() {
	max := len(d.dice) - 1
	for max > 0 {
		r := d.rng.Intn(max)
		d.SwapDice(r, max)
		max--
	}
}
