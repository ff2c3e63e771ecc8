package utils

import "math/bits"

// Unsigned 32-bit operations exposed to generated code, which only has a
// signed integer type.

func OrUint32(x int, y int) int {
	return int(int32(uint32(x) | uint32(y)))
}

func AndUint32(x int, y int) int {
	return int(int32(uint32(x) & uint32(y)))
}

func XorUint32(x int, y int) int {
	return int(int32(uint32(x) ^ uint32(y)))
}

func ShiftLeftUint32(x int, y int) int {
	return int(int32(uint32(x) << (uint(y) & 31)))
}

func ShiftRightUint32(x int, y int) int {
	return int(int32(uint32(x) >> (uint(y) & 31)))
}

func RotateLeftUint32(x int, y int) int {
	return int(int32(bits.RotateLeft32(uint32(x), y)))
}

func RotateRightUint32(x int, y int) int {
	return int(int32(bits.RotateLeft32(uint32(x), -y)))
}
