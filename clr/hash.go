package clr

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
)

// setSignature hashes a set of strings (represented as a slice) in an
// order-insensitive way: the slice is sorted before hashing, so two calls
// with the same elements in any order produce the same signature. Used to
// test state equality (§4.4) by comparing closed item-key sets.
func setSignature(elements []string) string {
	sorted := make([]string, len(elements))
	copy(sorted, elements)
	sort.Strings(sorted)

	h, err := structhash.Hash(sorted, 1)
	if err != nil {
		panic(fmt.Sprintf("clr: failed to hash set: %v", err))
	}
	return h
}
