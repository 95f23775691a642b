package eval

// Classify partitions a case's returned ids against its expected and
// false-positive labels and the dataset's valid-id set.
//
// It is a pure function: identical inputs always yield the identical
// classification, independent of call order or prior state. Expected-side
// sets (Hits, Missing) come out in expected-id order; returned-side sets in
// returned-id order. The inputs are assumed deduplicated; Normalize handles
// that upstream.
func Classify(expectedIDs, falsePositiveIDs, returnedIDs []string, valid IDSet) Classification {
	returned := toSet(returnedIDs)
	expected := toSet(expectedIDs)
	decoys := toSet(falsePositiveIDs)

	var cls Classification
	for _, id := range expectedIDs {
		if returned[id] {
			cls.Hits = append(cls.Hits, id)
		} else {
			cls.Missing = append(cls.Missing, id)
		}
	}
	// The returned-side sets are independent memberships, not a partition:
	// a listed decoy that is also absent from the dataset lands in both
	// FalsePositiveHits and InvalidIDs.
	for _, id := range returnedIDs {
		inDataset := valid.Contains(id)
		if decoys[id] {
			cls.FalsePositiveHits = append(cls.FalsePositiveHits, id)
		}
		if !inDataset {
			cls.InvalidIDs = append(cls.InvalidIDs, id)
		}
		if inDataset && !expected[id] && !decoys[id] {
			cls.ExtrasUnscored = append(cls.ExtrasUnscored, id)
		}
	}
	return cls
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
