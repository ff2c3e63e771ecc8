package utils

// Bcd2Bin converts a binary-coded-decimal register value to binary.
func Bcd2Bin(value byte) byte {
	return value - 6*(value>>4)
}

// Bin2Bcd converts a binary value to binary-coded decimal.
func Bin2Bcd(value byte) byte {
	return value + 6*(value/10)
}
