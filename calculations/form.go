package calculations

// GBUnownForm derives the generation 2 Unown letter from the middle two bits
// of each IV.
func GBUnownForm(iv GBIVs) string {
	packed := (iv.Attack&0x6)<<5 | (iv.Defense&0x6)<<3 | (iv.Speed&0x6)<<1 | (iv.Special&0x6)>>1
	return string(rune('A' + packed/10))
}

// ModernUnownForm derives the Unown letter from the low two bits of each
// personality byte.
func ModernUnownForm(personality uint32) string {
	packed := (personality>>24&0x3)<<6 | (personality>>16&0x3)<<4 | (personality>>8&0x3)<<2 | personality&0x3
	switch letter := packed % 28; letter {
	case 26:
		return "?"
	case 27:
		return "!"
	default:
		return string(rune('A' + letter))
	}
}
