// Package igdt scores characters of an identification key with the
// information-gain decision tree heuristic: how evenly a character splits
// candidate species, how many of them have data for it, and how easy it
// is to observe.
//
// This is a pure package, all functions are safe for concurrent use.
package igdt

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/gnames/gnkey/pkg/dataset"
)

// CharacterEntropy describes how well a character splits a set of species.
type CharacterEntropy struct {
	CharacterID int `json:"characterId"`
	// Entropy is the Shannon entropy (bits) of the partition of candidate
	// species by the values they hold.
	Entropy float64 `json:"entropy"`
	// Coverage is the fraction of candidate species that have at least one
	// value of the character.
	Coverage float64 `json:"coverage"`
}

// ComputeCharacterEntropies returns entropy and coverage for every
// character of the pile over the given candidate species, ordered by
// character id. Characters without any data are returned with zero
// coverage. References are assumed to be valid.
func ComputeCharacterEntropies(
	ds *dataset.Dataset,
	pile *dataset.Pile,
	speciesIDs []int,
) []CharacterEntropy {
	charIDs := ds.PileCharacterIDs(pile)
	res := make([]CharacterEntropy, 0, len(charIDs))
	candidates := make(map[int]struct{}, len(speciesIDs))
	for _, id := range speciesIDs {
		candidates[id] = struct{}{}
	}

	for _, cid := range charIDs {
		sigs := signatures(ds, pile, cid, candidates)
		entropy, coverage := partitionStats(sigs, len(candidates))
		res = append(res, CharacterEntropy{
			CharacterID: cid,
			Entropy:     entropy,
			Coverage:    coverage,
		})
	}
	return res
}

// signatures maps every candidate species that holds any value of the
// character to the sorted list of those values.
func signatures(
	ds *dataset.Dataset,
	pile *dataset.Pile,
	characterID int,
	candidates map[int]struct{},
) map[int][]int {
	res := make(map[int][]int)
	for _, v := range ds.PileValues(pile, characterID) {
		for _, sid := range ds.Holders(v.ID) {
			if _, ok := candidates[sid]; ok {
				// values come in ascending id order, so signatures stay sorted
				res[sid] = append(res[sid], v.ID)
			}
		}
	}
	return res
}

// partitionStats groups species by identical signatures. Species absent
// from sigs form the unknown bucket.
func partitionStats(sigs map[int][]int, total int) (float64, float64) {
	if total == 0 {
		return 0, 0
	}

	buckets := make(map[string]int)
	for _, sig := range sigs {
		buckets[signatureKey(sig)]++
	}

	sizes := make([]int, 0, len(buckets)+1)
	for _, n := range buckets {
		sizes = append(sizes, n)
	}
	if unknown := total - len(sigs); unknown > 0 {
		sizes = append(sizes, unknown)
	}
	// summation order must not depend on map iteration
	slices.Sort(sizes)

	coverage := float64(len(sigs)) / float64(total)
	return Entropy(sizes, total), coverage
}

func signatureKey(sig []int) string {
	parts := make([]string, len(sig))
	for i, id := range sig {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// Entropy computes the base-2 Shannon entropy of bucket sizes out of
// total. Empty buckets contribute nothing. Zero total gives zero.
func Entropy(sizes []int, total int) float64 {
	if total <= 0 {
		return 0
	}
	var res float64
	for _, n := range sizes {
		if n <= 0 {
			continue
		}
		p := float64(n) / float64(total)
		res -= p * math.Log2(p)
	}
	// tiny negative rounding noise
	if res <= 0 {
		return 0
	}
	return res
}
