package segment

// Metadata stores the segment metadata.
type Metadata struct {
	ID       string
	NumDocs  int32
	NumTerms int
}
