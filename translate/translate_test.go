package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("channel full", From("channel full"))
	assert.Equal("line 3 'bogus' command invalid", From("line %d '%v' %v", 3, "bogus", "command invalid"))
	assert.Equal("'16' (16) exceeds 15", From("'%v' (%d) exceeds %d", "16", 16, 15))
}
