package randsrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededIsDeterministic(t *testing.T) {
	seed := []byte("test-seed-value-1234567890123456")
	a := Seeded(seed)
	b := Seeded(seed)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSeededShuffleIsDeterministic(t *testing.T) {
	seed := []byte("another-fixed-seed-abcdefghijklmn")

	items1 := []int{0, 1, 2, 3, 4, 5, 6, 7}
	Seeded(seed).Shuffle(len(items1), func(i, j int) {
		items1[i], items1[j] = items1[j], items1[i]
	})

	items2 := []int{0, 1, 2, 3, 4, 5, 6, 7}
	Seeded(seed).Shuffle(len(items2), func(i, j int) {
		items2[i], items2[j] = items2[j], items2[i]
	})

	assert.Equal(t, items1, items2)
}

func TestGlobalImplementsSource(t *testing.T) {
	var s Source = Global
	assert.NotPanics(t, func() {
		s.Intn(10)
	})
}
