package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPunktSegmenter_SpansAlignWithInput(t *testing.T) {
	s, err := NewPunktSegmenter()
	require.NoError(t, err)

	text := "The contract was signed. Both parties agreed to the terms. Payment is due in thirty days."
	spans, err := s.Segment(text)
	require.NoError(t, err)
	require.Len(t, spans, 3)

	cursor := 0
	for _, sp := range spans {
		assert.Equal(t, text[sp.Start:sp.End], sp.Text)
		assert.GreaterOrEqual(t, sp.Start, cursor, "spans must not overlap")
		cursor = sp.End
	}
	assert.Equal(t, "The contract was signed.", spans[0].Text)
}

func TestPunktSegmenter_HandlesAbbreviations(t *testing.T) {
	s, err := NewPunktSegmenter()
	require.NoError(t, err)

	text := "Dr. Smith testified on Monday. The court adjourned."
	spans, err := s.Segment(text)
	require.NoError(t, err)

	// "Dr." must not end a sentence.
	require.Len(t, spans, 2)
	assert.Equal(t, "Dr. Smith testified on Monday.", spans[0].Text)
}

func TestPunktSegmenter_RepeatedSentences(t *testing.T) {
	s, err := NewPunktSegmenter()
	require.NoError(t, err)

	text := "The motion was denied. The motion was denied."
	spans, err := s.Segment(text)
	require.NoError(t, err)
	require.Len(t, spans, 2)

	// The forward cursor binds the second occurrence to the later offset.
	assert.Equal(t, 0, spans[0].Start)
	assert.Greater(t, spans[1].Start, spans[0].End-1)
	assert.Equal(t, len(text), spans[1].End)
}

func TestPunktSegmenter_EmptyText(t *testing.T) {
	s, err := NewPunktSegmenter()
	require.NoError(t, err)

	spans, err := s.Segment("")
	require.NoError(t, err)
	assert.Empty(t, spans)
}
