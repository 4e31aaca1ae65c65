package entities

import "fmt"

// MergeStrategy selects how nested objects are combined by DeepMerge.
type MergeStrategy string

const (
	// MergeAlternating swaps the roles of base and incoming document at every
	// nested object, so template values win at even depths and existing values
	// win at odd depths. This is the behaviour shipped templates were built against.
	MergeAlternating MergeStrategy = "alternating"

	// MergeTemplateWins lets template scalars win at every depth.
	MergeTemplateWins MergeStrategy = "template-wins"
)

// ParseMergeStrategy maps a configuration value to a MergeStrategy.
// An empty value selects MergeAlternating.
func ParseMergeStrategy(raw string) (MergeStrategy, error) {
	switch MergeStrategy(raw) {
	case "", MergeAlternating:
		return MergeAlternating, nil
	case MergeTemplateWins:
		return MergeTemplateWins, nil
	default:
		return "", fmt.Errorf("unknown merge strategy %q", raw)
	}
}

// DeepMerge folds every key of source into target and returns the merged
// object. Both arguments must be object nodes; target may be modified.
//
//   - arrays on both sides are unioned, target entries first
//   - objects on both sides are merged recursively
//   - anything else takes the source value
func DeepMerge(target, source *Node, strategy MergeStrategy) *Node {
	for _, key := range source.keys {
		oldVal := target.Get(key)
		newVal := source.fields[key]

		switch {
		case isArray(oldVal) && isArray(newVal):
			target.Set(key, unionArrays(oldVal, newVal))
		case isObject(oldVal) && isObject(newVal):
			if strategy == MergeTemplateWins {
				target.Set(key, DeepMerge(oldVal, newVal, strategy))
			} else {
				target.Set(key, DeepMerge(newVal, oldVal, strategy))
			}
		default:
			target.Set(key, newVal)
		}
	}
	return target
}

// MergeManifests merges the template manifest into the existing one.
func MergeManifests(existing, template *Manifest, strategy MergeStrategy) *Manifest {
	return &Manifest{Root: DeepMerge(existing.Root, template.Root, strategy)}
}

func unionArrays(first, second *Node) *Node {
	out := &Node{Kind: KindArray, Items: make([]*Node, 0, len(first.Items)+len(second.Items))}
	for _, item := range append(append([]*Node(nil), first.Items...), second.Items...) {
		if !containsNode(out.Items, item) {
			out.Items = append(out.Items, item)
		}
	}
	return out
}

func containsNode(items []*Node, candidate *Node) bool {
	for _, item := range items {
		if item.Equal(candidate) {
			return true
		}
	}
	return false
}

func isArray(n *Node) bool  { return n != nil && n.Kind == KindArray }
func isObject(n *Node) bool { return n != nil && n.Kind == KindObject }
