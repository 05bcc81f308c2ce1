package mathx

// ScaleU16 returns v*num/den with 32-bit intermediates, saturating at 0xFFFF.
// den == 0 yields v unchanged.
func ScaleU16(v uint16, num, den uint32) uint16 {
	if den == 0 {
		return v
	}
	r := uint32(v) * num / den
	if r > 0xFFFF {
		return 0xFFFF
	}
	return uint16(r)
}
