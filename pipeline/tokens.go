package pipeline

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter reports how many model tokens a text span costs.
type TokenCounter interface {
	Count(text string) int
}

// TiktokenCounter counts with the cl100k_base BPE encoding.
type TiktokenCounter struct {
	encoding *tiktoken.Tiktoken
}

func NewTiktokenCounter() (*TiktokenCounter, error) {
	encoding, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("failed to load cl100k_base encoding: %w", err)
	}
	return &TiktokenCounter{encoding: encoding}, nil
}

func (t *TiktokenCounter) Count(text string) int {
	return len(t.encoding.Encode(text, nil, nil))
}
