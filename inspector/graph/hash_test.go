package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"code2project/inspector/graph"
)

func TestFingerprint(t *testing.T) {
	a := graph.Fingerprint([]byte("const a = 1;"))
	b := graph.Fingerprint([]byte("const b = 2;"))

	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, graph.Fingerprint([]byte("const a = 1;")))
}
