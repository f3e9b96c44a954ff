package response

import (
	"testing"

	"event-planner/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	first := NewPage([]string{"a", "b"}, request.PaginatedRequest{Page: 1, PerPage: 2}, 5)
	assert.Equal(t, 3, first.Meta.TotalPages)
	require.NotNil(t, first.Meta.NextPage)
	assert.Equal(t, 2, *first.Meta.NextPage)
	assert.Nil(t, first.Meta.PrevPage)

	last := NewPage([]string{"e"}, request.PaginatedRequest{Page: 3, PerPage: 2}, 5)
	assert.Nil(t, last.Meta.NextPage)
	require.NotNil(t, last.Meta.PrevPage)
	assert.Equal(t, 2, *last.Meta.PrevPage)
}

func TestNewPage_Defaults(t *testing.T) {
	empty := NewPage[string](nil, request.PaginatedRequest{}, 0)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 1, empty.Meta.Page)
	assert.Equal(t, 10, empty.Meta.PerPage)
	assert.Zero(t, empty.Meta.TotalPages)
	assert.Nil(t, empty.Meta.NextPage)
}

func TestNewPage_PastTheEnd(t *testing.T) {
	page := NewPage[string](nil, request.PaginatedRequest{Page: 9, PerPage: 2}, 3)
	assert.Empty(t, page.Items)
	assert.Nil(t, page.Meta.NextPage)
	require.NotNil(t, page.Meta.PrevPage)
	assert.Equal(t, 2, *page.Meta.PrevPage)
}
