package model

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator returns a new entity id on every call.
// Ids must be non-empty and unique within one Context.
type IDGenerator func() string

// NewUUID returns a random (version 4) UUID string.
func NewUUID() string {
	return uuid.NewString()
}

// SequentialIDs returns a generator of name-based UUIDs derived from
// namespace and a call counter. Two generators with the same namespace
// produce the same sequence.
func SequentialIDs(namespace string) IDGenerator {
	ns := uuid.NewSHA1(uuid.NameSpaceURL, []byte("frain:"+namespace))
	n := 0
	return func() string {
		n++
		return uuid.NewSHA1(ns, []byte(strconv.Itoa(n))).String()
	}
}
