package loo

import (
	"github.com/pkg/errors"

	"github.com/pssmlab/loorun/pkg/loo/model"
)

// Partitions produces the leave-one-out cover of items: one partition per
// item, with that item as target and every other item, in the original
// relative order, as background.
func Partitions(items []model.Item) ([]model.Partition, error) {
	if len(items) < 2 {
		return nil, errors.Wrapf(ErrTooFewItems, "got %d", len(items))
	}

	seen := make(map[model.Item]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			return nil, errors.Wrapf(ErrDuplicateItem, "%s", item)
		}
		seen[item] = struct{}{}
	}

	partitions := make([]model.Partition, 0, len(items))
	for i, target := range items {
		background := make([]model.Item, 0, len(items)-1)
		background = append(background, items[:i]...)
		background = append(background, items[i+1:]...)
		partitions = append(partitions, model.Partition{
			Target:     target,
			Background: background,
		})
	}

	return partitions, nil
}
