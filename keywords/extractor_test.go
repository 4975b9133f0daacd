package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_RanksByFrequency(t *testing.T) {
	e := NewExtractor(10)
	text := "The contract mentions the contract twice, the deadline once."

	kws, err := e.Extract(text)
	require.NoError(t, err)
	require.NotEmpty(t, kws)
	assert.Equal(t, Normalize("contract"), kws[0])
}

func TestExtract_RespectsLimit(t *testing.T) {
	e := NewExtractor(3)
	text := "The plaintiff, defendant, witness, lawyer, clerk, and bailiff entered the courtroom together."

	kws, err := e.Extract(text)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(kws), 3)
}

func TestExtract_FiltersNoise(t *testing.T) {
	e := NewExtractor(10)
	text := "The judgment was entered against the defendant on the merits."

	kws, err := e.Extract(text)
	require.NoError(t, err)
	for _, kw := range kws {
		assert.GreaterOrEqual(t, len(kw), 3, "short token %q survived", kw)
		assert.False(t, stopWords[kw], "stop word %q survived", kw)
		assert.Equal(t, strings.ToLower(kw), kw, "keyword %q is not lower-cased", kw)
	}
}

func TestExtract_EmptyText(t *testing.T) {
	e := NewExtractor(10)

	kws, err := e.Extract("")
	require.NoError(t, err)
	assert.Empty(t, kws)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Contracts", "contract"},
		{"  Filing ", "file"},
		{"damages", "damag"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in))
	}
}
