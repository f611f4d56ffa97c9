package random

// u64 returns the 64 sample-stream bits of counter block i.
func (k Key) u64(i uint64) uint64 {
	w0, w1 := k.block(domainSample, i)
	return uint64(w0)<<32 | uint64(w1)
}

// uniform24 maps 32 random bits onto [0, 1) using the top 24 bits,
// the full precision of a float32 mantissa.
func uniform24(w uint32) float32 {
	return float32(w>>8) * (1.0 / (1 << 24))
}

// uniform53 maps 64 random bits onto [0, 1) using the top 53 bits,
// the full precision of a float64 mantissa.
func uniform53(u uint64) float64 {
	return float64(u>>11) * (1.0 / (1 << 53))
}

// openUnit maps 64 random bits onto the open interval (0, 1),
// suitable for inverse-CDF transforms that diverge at the endpoints.
func openUnit(u uint64) float64 {
	return (float64(u>>11) + 0.5) * (1.0 / (1 << 53))
}
