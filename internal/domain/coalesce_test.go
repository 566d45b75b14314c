package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "b", CoalesceStr("", "b", "c"))
	assert.Equal(t, "", CoalesceStr("", ""))
	assert.Equal(t, "", CoalesceStr())
}

func TestValueOr(t *testing.T) {
	age := 0
	assert.Equal(t, 0, ValueOr(&age, 14), "explicit zero is kept")
	assert.Equal(t, 14, ValueOr[int](nil, 14))

	acwr := 1.3
	assert.Equal(t, 1.3, ValueOr(&acwr, 0))
}
