package treewire

import "sort"

// constraintKind names one validation family. A codec holds at most one
// active constraint per kind: re-applying a setter of the same kind replaces
// the prior bound, it never stacks a second check.
//
// The declaration order below is the evaluation order. Minimum-style bounds
// come before maximum-style bounds, so an Exact* setter (min+max of the same
// value) reports the minimum message when under and the maximum message when
// over.
type constraintKind int

const (
	kindMinLength constraintKind = iota
	kindMinSize
	kindMinValue
	kindMinDuration
	kindAfter
	kindMaxLength
	kindMaxSize
	kindMaxValue
	kindMaxDuration
	kindBefore
	kindSign
	kindPrecision
	kindScale
	kindWholeUnit
	kindPattern
	kindCase
	kindBlank
	kindContains
	kindPrefix
	kindSuffix
	kindCharClass
	kindKeySet
	kindNetwork
	kindScheme
	kindHost
	kindPort
	kindPathShape
	kindUUIDVersion
)

// constraint pairs a kind with a predicate. check returns "" when v passes
// and the violation message otherwise.
type constraint[T any] struct {
	kind  constraintKind
	check func(v T) string
}

type constraintSet[T any] []constraint[T]

// with returns a copy of s where c replaces any prior constraint of the same
// kind. The copy is re-sorted into the fixed evaluation order.
func (s constraintSet[T]) with(c constraint[T]) constraintSet[T] {
	out := make(constraintSet[T], 0, len(s)+1)
	replaced := false
	for _, e := range s {
		if e.kind == c.kind {
			out = append(out, c)
			replaced = true
			continue
		}
		out = append(out, e)
	}
	if !replaced {
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].kind < out[j].kind })
	return out
}

// eval runs the active constraints in order and reports the first violation,
// wrapped with the owning codec's type name. It returns "" when all pass.
func (s constraintSet[T]) eval(typeName string, v T) string {
	for _, c := range s {
		if msg := c.check(v); msg != "" {
			return typeName + " does not meet constraints: " + msg
		}
	}
	return ""
}
