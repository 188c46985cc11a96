// Package csum implements incremental one's-complement checksum updates.
//
// When a single 16-bit field of a checksummed header is replaced, the
// checksum can be fixed up without re-reading the header: remove the old
// field's contribution, add the new one, with end-around carry at each step.
// The result is numerically identical to a full recomputation over the
// mutated bytes.
package csum

// Add16 adds v to the one's-complement accumulator c with end-around carry.
func Add16(c, v uint16) uint16 {
	s := c + v
	if s < v {
		s++
	}
	return s
}

// Replace16 returns the checksum after the 16-bit field old has been replaced
// by new, given the header's current checksum.
func Replace16(check, old, new uint16) uint16 {
	return ^Add16(Add16(^check, ^old), new)
}

// Sum16 computes the Internet checksum over data, folding 32-bit partial sums
// and complementing the result. An odd trailing byte is padded with zero.
// Used to cross-check incremental updates.
func Sum16(data []byte) uint16 {
	var sum uint32
	for len(data) >= 2 {
		sum += uint32(data[0])<<8 | uint32(data[1])
		data = data[2:]
	}
	if len(data) == 1 {
		sum += uint32(data[0]) << 8
	}
	for sum > 0xFFFF {
		sum = (sum >> 16) + (sum & 0xFFFF)
	}
	return ^uint16(sum)
}
