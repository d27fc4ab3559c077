package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPaginate(t *testing.T) {
	t.Run("last page has no next", func(t *testing.T) {
		p := BuildPaginate(25, 3, 10)

		assert.Equal(t, int64(25), p.Total)
		assert.Equal(t, 10, p.PerPage)
		assert.Equal(t, 3, p.CurrentPage)
		assert.Equal(t, 3, p.LastPage)
		assert.Nil(t, p.NextPage)
		require.NotNil(t, p.PrevPage)
		assert.Equal(t, 2, *p.PrevPage)
	})

	t.Run("first of many", func(t *testing.T) {
		p := BuildPaginate(25, 1, 10)

		assert.Equal(t, 3, p.LastPage)
		assert.Nil(t, p.PrevPage)
		require.NotNil(t, p.NextPage)
		assert.Equal(t, 2, *p.NextPage)
	})

	t.Run("empty result still has one page", func(t *testing.T) {
		p := BuildPaginate(0, 1, 10)

		assert.Equal(t, 1, p.LastPage)
		assert.Nil(t, p.NextPage)
		assert.Nil(t, p.PrevPage)
	})
}

func TestNewPageQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q := NewPageQuery(0, 0)
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, 10, q.Limit)
		assert.Equal(t, 0, q.Offset)
	})

	t.Run("negative values fall back to defaults", func(t *testing.T) {
		q := NewPageQuery(-2, -5)
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, 10, q.Limit)
	})

	t.Run("offset arithmetic", func(t *testing.T) {
		q := NewPageQuery(3, 20)
		assert.Equal(t, 40, q.Offset)
	})
}
