package domain_test

import (
	"testing"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(id int64, parent ...int64) domain.TransactionCategory {
	c := domain.TransactionCategory{ID: id}
	if len(parent) > 0 {
		p := parent[0]
		c.ParentID = &p
	}
	return c
}

func TestCheckHierarchy(t *testing.T) {
	tests := []struct {
		name  string
		nodes []domain.TransactionCategory
		want  []domain.HierarchyIssue
	}{
		{name: "empty"},
		{name: "forest", nodes: []domain.TransactionCategory{node(1), node(2, 1), node(3, 2), node(4)}},
		{
			name:  "self loop",
			nodes: []domain.TransactionCategory{node(1, 1)},
			want:  []domain.HierarchyIssue{{Kind: domain.HierarchyCycle, NodeID: 1, Path: []int64{1}}},
		},
		{
			name:  "loop with a tail",
			nodes: []domain.TransactionCategory{node(1, 2), node(2, 3), node(3, 2), node(4, 1)},
			want:  []domain.HierarchyIssue{{Kind: domain.HierarchyCycle, NodeID: 2, Path: []int64{2, 3}}},
		},
		{
			name:  "dangling parent",
			nodes: []domain.TransactionCategory{node(1), node(2, 9)},
			want:  []domain.HierarchyIssue{{Kind: domain.HierarchyMissingParent, NodeID: 2, Path: []int64{2, 9}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CheckHierarchy(tt.nodes))
		})
	}
}

func TestCheckHierarchy_LongChainTerminates(t *testing.T) {
	const n = 5000
	nodes := make([]domain.TransactionCategory, 0, n)
	nodes = append(nodes, node(1, n))
	for id := int64(2); id <= n; id++ {
		nodes = append(nodes, node(id, id-1))
	}
	issues := domain.CheckHierarchy(nodes)
	require.Len(t, issues, 1)
	assert.Len(t, issues[0].Path, n)
}

func TestWouldCreateCycle(t *testing.T) {
	nodes := []domain.TransactionCategory{node(1), node(2, 1), node(3, 2), node(4)}
	p := func(v int64) *int64 { return &v }

	assert.False(t, domain.WouldCreateCycle(nodes, 3, nil))
	assert.False(t, domain.WouldCreateCycle(nodes, 4, p(3)))
	assert.False(t, domain.WouldCreateCycle(nodes, 3, p(4)))
	assert.True(t, domain.WouldCreateCycle(nodes, 1, p(3)))
	assert.True(t, domain.WouldCreateCycle(nodes, 2, p(2)))
}

func TestAncestorPath(t *testing.T) {
	nodes := []domain.TransactionCategory{node(1), node(2, 1), node(3, 2)}

	path, err := domain.AncestorPath(nodes, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1}, path)

	_, err = domain.AncestorPath(nodes, 7)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = domain.AncestorPath([]domain.TransactionCategory{node(1, 2), node(2, 1)}, 1)
	assert.ErrorIs(t, err, apperrors.ErrInvariant)

	_, err = domain.AncestorPath([]domain.TransactionCategory{node(1, 5)}, 1)
	assert.ErrorIs(t, err, apperrors.ErrIntegrity)
}
