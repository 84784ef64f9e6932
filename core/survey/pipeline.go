package survey

// Analyze runs the full scoring pipeline over a freshly ingested dataset:
// Likert normalization, derived columns, column classification and score
// aggregation. It returns the insights and the list of columns that were
// converted from Likert text to integers. The pipeline is a single
// deterministic in-memory pass; every user interaction triggers a full
// recomputation, there is no incremental path.
func Analyze(ds *Dataset) (Insights, []string) {
	converted := Normalize(ds)
	Derive(ds)
	matched := Classify(ds.Columns(), BelongingTaxonomy)
	return Aggregate(ds, matched), converted
}
