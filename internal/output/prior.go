package output

import (
	"encoding/json"
	"os"
)

// PriorState classifies what the previous run left behind in the latest-state
// file. Malformed content is deliberately treated like absence: a damaged
// latest.json must never block the next export.
type PriorState int

const (
	// PriorAbsent means no latest-state file exists
	PriorAbsent PriorState = iota
	// PriorMalformed means the file exists but its fingerprint is unreadable
	PriorMalformed
	// PriorPresent means a prior fingerprint was read successfully
	PriorPresent
)

// String returns the state name for logs
func (s PriorState) String() string {
	switch s {
	case PriorAbsent:
		return "absent"
	case PriorMalformed:
		return "malformed"
	case PriorPresent:
		return "present"
	default:
		return "unknown"
	}
}

// ReadPriorFingerprint reads the fingerprint recorded in an existing
// latest-state file. It never fails: unreadable files and invalid or
// hash-less JSON report PriorMalformed with an empty fingerprint.
func ReadPriorFingerprint(path string) (PriorState, string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return PriorAbsent, ""
		}
		return PriorMalformed, ""
	}

	var prior struct {
		Hash string `json:"hash"`
	}
	if err := json.Unmarshal(data, &prior); err != nil {
		return PriorMalformed, ""
	}
	if prior.Hash == "" {
		return PriorMalformed, ""
	}
	return PriorPresent, prior.Hash
}
