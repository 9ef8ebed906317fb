package installer

// Status is the outcome of one concrete package operation.
type Status string

const (
	StatusOK      Status = "OK"
	StatusFailed  Status = "FAIL"
	StatusSkipped Status = "SKIP"
)

// KeyResult is the outcome of resolving and installing one logical key
// (or one of the concrete packages it expanded to).
type KeyResult struct {
	Key     string
	Package string
	Channel string
	Status  Status
	Detail  string
}

// Report collects per-key results for one batch.
type Report []KeyResult

// Failed returns the entries whose install did not succeed.
func (r Report) Failed() Report {
	var out Report
	for _, kr := range r {
		if kr.Status == StatusFailed {
			out = append(out, kr)
		}
	}
	return out
}

// Installed returns the entries that were actually installed.
func (r Report) Installed() Report {
	var out Report
	for _, kr := range r {
		if kr.Status == StatusOK {
			out = append(out, kr)
		}
	}
	return out
}
