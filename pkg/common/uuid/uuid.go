package uuid

import (
	"github.com/gofrs/uuid/v5"
)

// UUID is a thin alias over gofrs so model and web code share one import.
type UUID = uuid.UUID

var Nil = uuid.Nil

func New() UUID {
	return uuid.Must(uuid.NewV7())
}

func FromString(s string) (UUID, error) {
	return uuid.FromString(s)
}
