package wizard

import (
	"crypto/rand"
)

const refAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RefNumberLength is the fixed length of a listing reference number.
const RefNumberLength = 7

// NewRefNumber generates a 7-character alphanumeric reference token. It is
// generated exactly once per draft and immutable thereafter.
func NewRefNumber() string {
	buf := make([]byte, RefNumberLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i, b := range buf {
		buf[i] = refAlphabet[int(b)%len(refAlphabet)]
	}
	return string(buf)
}
