package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := map[string]string{"A": "1"}
	b := map[string]string{"B": "2", "C": "3"}

	got := maps.Collect(IterSeq2Concat(maps.All(a), maps.All(b)))
	assert.Equal(map[string]string{"A": "1", "B": "2", "C": "3"}, got)

	// Early stop.
	count := 0
	for range IterSeq2Concat(maps.All(a), maps.All(b)) {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestSortedSeq2(t *testing.T) {
	assert := assert.New(t)

	m := map[string]string{"STA_ZP": "0x85", "LDA_IMM": "0xa9", "NOP": "0xea"}

	var keys []string
	for key, value := range SortedSeq2(m) {
		keys = append(keys, key)
		assert.Equal(m[key], value)
	}
	assert.Equal([]string{"LDA_IMM", "NOP", "STA_ZP"}, keys)
}
