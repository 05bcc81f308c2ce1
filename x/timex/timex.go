package timex

// PeriodFromHz returns a nanosecond period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) uint64 {
	if freqHz == 0 {
		freqHz = 1
	}
	return uint64(1_000_000_000 / uint64(freqHz))
}

// PeriodMicros is the microsecond period of freqHz (freqHz==0 coerced to 1).
func PeriodMicros(freqHz uint32) uint32 {
	return uint32(PeriodFromHz(freqHz) / 1000)
}

// DutySplit divides a period into high and low phases for a duty cycle in
// percent. duty is capped at 100.
func DutySplit(periodUs uint32, dutyPercent uint8) (highUs, lowUs uint32) {
	if dutyPercent > 100 {
		dutyPercent = 100
	}
	highUs = periodUs * uint32(dutyPercent) / 100
	return highUs, periodUs - highUs
}

// Cycles returns how many full periods of freqHz fit into durMs.
func Cycles(freqHz uint32, durMs uint32) uint32 {
	return uint32(uint64(freqHz) * uint64(durMs) / 1000)
}
