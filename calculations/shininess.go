package calculations

// GBShiny reports generation 2 shininess, decided by the IVs alone.
func GBShiny(iv GBIVs) bool {
	if iv.Defense != 10 || iv.Speed != 10 || iv.Special != 10 {
		return false
	}
	switch iv.Attack {
	case 2, 3, 6, 7, 10, 11, 14, 15:
		return true
	}
	return false
}

// ModernShiny reports generation 3+ shininess from the personality value and
// the full 32-bit trainer id (secret id in the high half).
func ModernShiny(personality, trainerID uint32) bool {
	return shinyValue(personality, trainerID) < 8
}

func shinyValue(personality, trainerID uint32) uint32 {
	return (trainerID>>16 ^ trainerID&0xFFFF ^ personality>>16 ^ personality&0xFFFF) & 0xFFFF
}
