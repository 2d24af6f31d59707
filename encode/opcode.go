package encode

// BuildLoadStoreOpcode composes a load/store instruction's 7-bit
// opcode field. A STORE with a zero/sign-extending dest is not a
// representable operation — extension only makes sense when reading
// memory into a wider register — so that combination fails.
func BuildLoadStoreOpcode(kind LoadStoreKind, size LoadStoreSize, dest LoadStoreDest, mode AddressMode) (uint32, error) {
	if kind == Store && dest&LowW == 0 {
		return 0, ErrInvalidCombination
	}
	return uint32(kind)<<4 | uint32(size)<<3 | uint32(dest)<<1 | uint32(mode), nil
}

// BuildAluOpcode composes an ALU instruction's 7-bit opcode field.
// Bit 6 is always set, distinguishing ALU opcodes from load/store and
// mov/jump opcodes sharing the same 7-bit space.
func BuildAluOpcode(op AluOp, style AluStyle) uint32 {
	return 1<<6 | uint32(op)<<2 | uint32(style)
}

// BuildMovOpcode composes a mov/jump instruction's 7-bit opcode field.
func BuildMovOpcode(op MovOp, cond MovCond) uint32 {
	return 0b01<<5 | uint32(cond)<<2 | uint32(op)
}
