package gormstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "tomato", escapeLike("tomato"))
	assert.Equal(t, `50\% off`, escapeLike("50% off"))
	assert.Equal(t, `o\_f`, escapeLike("o_f"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
}
