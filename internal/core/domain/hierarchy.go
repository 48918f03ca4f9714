package domain

import (
	"fmt"
	"sort"

	"github.com/SscSPs/nemo/internal/apperrors"
)

// HierarchyNode is a row with a nullable reference to a parent of the same type.
type HierarchyNode interface {
	NodeID() int64
	ParentNodeID() *int64
}

// HierarchyIssueKind classifies a broken parent chain.
type HierarchyIssueKind string

const (
	HierarchyCycle         HierarchyIssueKind = "cycle"
	HierarchyMissingParent HierarchyIssueKind = "missing_parent"
)

// HierarchyIssue reports one broken chain. For a cycle, Path lists the ids on the loop in
// parent order. For a missing parent, Path is the node and the absent parent id.
type HierarchyIssue struct {
	Kind   HierarchyIssueKind `json:"kind"`
	NodeID int64              `json:"nodeID"`
	Path   []int64            `json:"path"`
}

func (i HierarchyIssue) String() string {
	return fmt.Sprintf("%s at node %d: %v", i.Kind, i.NodeID, i.Path)
}

// CheckHierarchy follows every node's parent chain and reports cycles and dangling
// parents. Each node is visited once, so the walk takes at most len(nodes) steps.
func CheckHierarchy[T HierarchyNode](nodes []T) []HierarchyIssue {
	parents := make(map[int64]*int64, len(nodes))
	ids := make([]int64, 0, len(nodes))
	for _, n := range nodes {
		parents[n.NodeID()] = n.ParentNodeID()
		ids = append(ids, n.NodeID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	const (
		unvisited = iota
		onPath
		done
	)
	state := make(map[int64]int, len(nodes))
	var issues []HierarchyIssue

	for _, start := range ids {
		var path []int64
		cur := start
		for {
			if state[cur] == done {
				break
			}
			if state[cur] == onPath {
				loop := path[indexOf(path, cur):]
				issues = append(issues, HierarchyIssue{Kind: HierarchyCycle, NodeID: cur, Path: append([]int64(nil), loop...)})
				break
			}
			state[cur] = onPath
			path = append(path, cur)

			parent := parents[cur]
			if parent == nil {
				break
			}
			if _, ok := parents[*parent]; !ok {
				issues = append(issues, HierarchyIssue{Kind: HierarchyMissingParent, NodeID: cur, Path: []int64{cur, *parent}})
				break
			}
			cur = *parent
		}
		for _, id := range path {
			state[id] = done
		}
	}
	return issues
}

// WouldCreateCycle reports whether giving nodeID the parent newParentID would close a loop.
func WouldCreateCycle[T HierarchyNode](nodes []T, nodeID int64, newParentID *int64) bool {
	if newParentID == nil {
		return false
	}
	parents := make(map[int64]*int64, len(nodes))
	for _, n := range nodes {
		parents[n.NodeID()] = n.ParentNodeID()
	}
	parents[nodeID] = newParentID

	cur := *newParentID
	for steps := 0; steps <= len(parents); steps++ {
		if cur == nodeID {
			return true
		}
		p, ok := parents[cur]
		if !ok || p == nil {
			return false
		}
		cur = *p
	}
	// More steps than nodes means some other loop already exists above newParentID.
	return true
}

// AncestorPath returns the ids from nodeID up to its root, nodeID first.
func AncestorPath[T HierarchyNode](nodes []T, nodeID int64) ([]int64, error) {
	parents := make(map[int64]*int64, len(nodes))
	for _, n := range nodes {
		parents[n.NodeID()] = n.ParentNodeID()
	}
	if _, ok := parents[nodeID]; !ok {
		return nil, fmt.Errorf("node %d: %w", nodeID, apperrors.ErrNotFound)
	}

	path := []int64{nodeID}
	seen := map[int64]bool{nodeID: true}
	cur := nodeID
	for {
		p := parents[cur]
		if p == nil {
			return path, nil
		}
		if seen[*p] {
			return nil, fmt.Errorf("%w: cycle through node %d", apperrors.ErrInvariant, *p)
		}
		if _, ok := parents[*p]; !ok {
			return nil, fmt.Errorf("%w: node %d references missing parent %d", apperrors.ErrIntegrity, cur, *p)
		}
		seen[*p] = true
		path = append(path, *p)
		cur = *p
	}
}

func indexOf(ids []int64, id int64) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
