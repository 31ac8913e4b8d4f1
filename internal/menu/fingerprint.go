package menu

import (
	"menuexport/internal/output"
)

// fingerprintPayload is the hashed projection of a document. generated_at and
// hash are excluded: the fingerprint must not change when only the generation
// timestamp differs, otherwise every run would look changed and the
// no-op path of the writer would be unreachable.
type fingerprintPayload struct {
	Categories []Category `json:"categories"`
}

// Fingerprint returns the document's content hash: SHA-256 over the canonical
// byte form of the categories payload, lowercase hex.
func Fingerprint(doc *MenuDocument) (string, error) {
	return output.Fingerprint(fingerprintPayload{Categories: doc.Categories})
}
