package types

// EffectNames lists the lighting effects by settings name, in the order of
// the lighting engine's Effect values.
var EffectNames = [...]string{"none", "static", "breathing", "candle", "calibration"}

// KnownEffect reports whether name is one of EffectNames.
func KnownEffect(name string) bool {
	for _, n := range EffectNames {
		if n == name {
			return true
		}
	}
	return false
}
