package lists

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeEmpty(t *testing.T) {
	block := Encode("Allies", nil)
	assert.Equal(t, Block{Title: "Allies", Body: "List is empty."}, block)
	assert.Equal(t, []string{}, Decode(&block))

	block = Encode("Enemies", []string{})
	assert.Equal(t, EmptyList, block.Body)
}

func TestEncodeNumbersFromOne(t *testing.T) {
	block := Encode("Enemies", []string{"Alice", "Bob", "Carol"})
	assert.Equal(t, "Enemies", block.Title)
	assert.Equal(t, "1. Alice\n2. Bob\n3. Carol", block.Body)
}

func TestDecodeAbsent(t *testing.T) {
	assert.Equal(t, []string{}, Decode(nil))
	assert.Equal(t, []string{}, Decode(&Block{Title: "Allies"}))
}

func TestRoundTrip(t *testing.T) {
	cases := [][]string{
		{"Alice"},
		{"Alice", "Bob"},
		{"X", "Y", "X"},
		{"with spaces", "trailing.dot.", "1.2", "#tag", "名前"},
	}
	for _, entries := range cases {
		block := Encode("Allies", entries)
		assert.Equal(t, entries, Decode(&block))
	}
}

func TestDecodeOnlyFirstSeparator(t *testing.T) {
	block := Encode("Allies", []string{"Dr. Who"})
	assert.Equal(t, "1. Dr. Who", block.Body)
	assert.Equal(t, []string{"Dr. Who"}, Decode(&block))

	// A line without a rank loses everything up to its first separator
	block = Block{Body: "Dr. Who"}
	assert.Equal(t, []string{"Who"}, Decode(&block))
}

func TestDecodeMalformedLines(t *testing.T) {
	block := Block{Body: "1. Alice\nno separator here\n3. Carol"}
	assert.Equal(t, []string{"Alice", "no separator here", "Carol"}, Decode(&block))
}
