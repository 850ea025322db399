package tree

import "encoding/json"

// MarshalResult serialises an AnalysisResult to JSON.
func MarshalResult(r *AnalysisResult) ([]byte, error) {
	return json.Marshal(r)
}

// UnmarshalResult deserialises an AnalysisResult from JSON.
func UnmarshalResult(data []byte) (*AnalysisResult, error) {
	var r AnalysisResult
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Walk visits el and every descendant in depth-first document order.
// Returning false from fn stops descent into that subtree.
func Walk(el *AnalyzedElement, fn func(*AnalyzedElement) bool) {
	if el == nil {
		return
	}
	if !fn(el) {
		return
	}
	for _, c := range el.Children {
		Walk(c, fn)
	}
}

// Count returns the number of elements reachable from the result's roots.
func (r *AnalysisResult) Count() int {
	n := 0
	for _, el := range r.Elements {
		Walk(el, func(*AnalyzedElement) bool { n++; return true })
	}
	return n
}
