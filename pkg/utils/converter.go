package utils

import (
	"encoding/binary"
	"unsafe"
)

// StringToBytes converts string to a byte slice without any memory allocation.
func StringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BytesToString converts byte slice to a string without any memory allocation.
func BytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Uint64ToBytes converts uint64 to a little-endian byte slice.
func Uint64ToBytes(n uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, n)
	return b
}

// BytesToUint64 converts a little-endian byte slice to uint64.
func BytesToUint64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}
