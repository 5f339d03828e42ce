package checkers

import (
	"context"
	"errors"
)

var ErrEmptyIndex = errors.New("knowledge index is empty")

// Sizer is satisfied by the knowledge index.
type Sizer interface {
	Len() int
}

// KnowledgeChecker fails when no passages are loaded, since every answer
// would then be the generic fallback.
type KnowledgeChecker struct {
	index Sizer
}

func NewKnowledgeChecker(index Sizer) *KnowledgeChecker {
	return &KnowledgeChecker{index: index}
}

func (c *KnowledgeChecker) Name() string { return "knowledge" }

func (c *KnowledgeChecker) Check(context.Context) error {
	if c.index.Len() == 0 {
		return ErrEmptyIndex
	}
	return nil
}
