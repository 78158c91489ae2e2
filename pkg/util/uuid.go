package util

import (
	"crypto/md5"
	"encoding/json"
	"math/big"

	"github.com/google/uuid"
)

// uuidRoot is the DICOM root for UUID-derived UIDs (PS3.5 B.2)
const uuidRoot = "2.25."

// HashUUID derives a stable UUID from the JSON form of value
func HashUUID(value any) string {
	raw, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	hash := md5.Sum(raw)
	id, err := uuid.FromBytes(hash[:16])
	if err != nil {
		return ""
	}
	return id.String()
}

// NewUID returns a fresh DICOM UID under the 2.25 root
func NewUID() string {
	return UIDFromUUID(uuid.New())
}

// UIDFromUUID renders a UUID as a 2.25 DICOM UID: the UUID's 128 bits as one decimal integer
func UIDFromUUID(id uuid.UUID) string {
	return uuidRoot + new(big.Int).SetBytes(id[:]).String()
}
