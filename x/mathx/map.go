package mathx

// MapU16 maps x in [inMin,inMax] to [outMin,outMax] with 32-bit intermediates.
// Clamps to the out range if the input is outside.
func MapU16(x, inMin, inMax, outMin, outMax uint16) uint16 {
	if inMax == inMin {
		return outMin
	}
	if x < inMin {
		return outMin
	}
	if x > inMax {
		return outMax
	}
	num := uint32(x-inMin) * uint32(outMax-outMin)
	den := uint32(inMax - inMin)
	return uint16(uint32(outMin) + num/den)
}

// Triangle folds a masked ramp into a symmetric triangle wave:
// values above mask/2 are mirrored to mask-v. mask must be 2^n-1.
func Triangle(v, mask uint8) uint8 {
	v &= mask
	if v > mask/2 {
		return mask - v
	}
	return v
}
