// Package wire encodes the 8-byte datagram payload.
//
//	offset 0..4  int32 little-endian  target index
//	offset 4..8  int32 little-endian  action code
//
// There is no header, length prefix, checksum or version field.
package wire

import (
	"encoding/binary"

	"github.com/zhubert/wowint/internal/errors"
)

// Size is the payload length in bytes.
const Size = 8

// Encode packs index and code into a payload.
func Encode(index, code int32) [Size]byte {
	var b [Size]byte
	binary.LittleEndian.PutUint32(b[0:4], uint32(index))
	binary.LittleEndian.PutUint32(b[4:8], uint32(code))
	return b
}

// AppendEncode appends the payload for index and code to dst.
func AppendEncode(dst []byte, index, code int32) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, uint32(index))
	return binary.LittleEndian.AppendUint32(dst, uint32(code))
}

// Decode unpacks a payload. b must be exactly Size bytes long.
func Decode(b []byte) (index, code int32, err error) {
	if len(b) != Size {
		return 0, 0, errors.InvalidPayload(len(b))
	}
	index = int32(binary.LittleEndian.Uint32(b[0:4]))
	code = int32(binary.LittleEndian.Uint32(b[4:8]))
	return index, code, nil
}
