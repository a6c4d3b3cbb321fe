package suggest

// ResultKind tells which of the three query outcomes a result is.
type ResultKind int

const (
	KindMiss    ResultKind = iota // first character not in the trie
	KindExact                     // whole input is a known word
	KindPartial                   // some prefix matched
)

func (k ResultKind) String() string {
	switch k {
	case KindExact:
		return "exact"
	case KindPartial:
		return "partial"
	default:
		return "miss"
	}
}

// QueryResult has the same shape for every outcome.
// Suggestions is never nil and UseCount is only set on exact hits.
type QueryResult struct {
	MatchedPrefix string
	IsWord        bool
	Suggestions   []string
	UseCount      uint
}

// Kind classifies the result.
func (r QueryResult) Kind() ResultKind {
	switch {
	case r.IsWord:
		return KindExact
	case r.MatchedPrefix == "":
		return KindMiss
	default:
		return KindPartial
	}
}

func missResult() QueryResult {
	return QueryResult{Suggestions: []string{}}
}
