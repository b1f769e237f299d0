// Package wire defines the instruction payload layout shared by the host
// driver and every variant build: a fixed-width target id prefix followed
// by target-defined setup bytes.
package wire

import (
	"encoding/binary"
	"errors"
)

// TargetID is the stable numeric identity of a benchmark target. Ids are
// unique within one environment registry and never reused once published,
// since payloads carry nothing else to select behavior by.
type TargetID uint16

// IDSize is the fixed width of the target id prefix in bytes.
const IDSize = 2

var ErrTruncated = errors.New("instruction truncated")

// Encode builds an instruction payload from a target id and setup bytes.
func Encode(id TargetID, setup []byte) []byte {
	payload := make([]byte, IDSize+len(setup))
	binary.LittleEndian.PutUint16(payload, uint16(id))
	copy(payload[IDSize:], setup)
	return payload
}

// Decode splits an instruction payload into the target id and the
// remaining setup bytes. The setup bytes alias the input.
func Decode(instruction []byte) (TargetID, []byte, error) {
	if len(instruction) < IDSize {
		return 0, nil, ErrTruncated
	}
	id := TargetID(binary.LittleEndian.Uint16(instruction))
	return id, instruction[IDSize:], nil
}
