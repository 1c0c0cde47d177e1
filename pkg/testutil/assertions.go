package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertErrorContains checks that err contains the expected substring.
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	assert.Error(t, err)
	if err != nil {
		assert.Contains(t, err.Error(), expected)
	}
}

// AssertScoreWithin checks lo <= score <= hi.
func AssertScoreWithin(t *testing.T, score, lo, hi int) {
	t.Helper()
	assert.GreaterOrEqual(t, score, lo, "score below lower bound")
	assert.LessOrEqual(t, score, hi, "score above upper bound")
}
