package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, Params{Page: 1, Limit: 10}, Normalize(0, 0, 10, 100))
	assert.Equal(t, Params{Page: 3, Limit: 25}, Normalize(3, 25, 10, 100))
	assert.Equal(t, Params{Page: 1, Limit: 100}, Normalize(-4, 1000, 10, 100))
	assert.Equal(t, Params{Page: 2, Limit: 500}, Normalize(2, 500, 10, 0))
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 40, Params{Page: 5, Limit: 10}.Offset())
}

func TestNewMeta(t *testing.T) {
	assert.Equal(t, Meta{CurrentPage: 1, TotalPages: 0, TotalItems: 0, ItemsPerPage: 10}, NewMeta(Params{Page: 1, Limit: 10}, 0))
	assert.Equal(t, Meta{CurrentPage: 2, TotalPages: 3, TotalItems: 21, ItemsPerPage: 10}, NewMeta(Params{Page: 2, Limit: 10}, 21))
	assert.Equal(t, 2, NewMeta(Params{Page: 1, Limit: 10}, 20).TotalPages)
}
