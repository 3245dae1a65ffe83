package queryrunner

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"go.trai.ch/lithos/internal/core/domain"
	"go.trai.ch/zerr"
)

// canonicalize serializes a result deterministically. encoding/json sorts
// map keys, so semantically identical results always produce identical
// bytes. The returned bytes are both hashed and persisted.
func canonicalize(result *domain.ExecutionResult) ([]byte, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrResultMarshalFailed.Error())
	}
	return data, nil
}

// digest returns the hex-encoded SHA-256 of the serialized result.
func digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
