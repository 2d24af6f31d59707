package encode

// BuildShortInsn packs the 16-bit SHORT form:
// [rs_and_rd:4 | ro:4 | opcode:7] (top bit = 0).
func BuildShortInsn(rsAndRd, ro, opcode int64) (uint16, error) {
	if err := verifyRegister("rs_and_rd", rsAndRd); err != nil {
		return 0, err
	}
	if err := verifyRegister("ro", ro); err != nil {
		return 0, err
	}
	if err := verifyOpcode(opcode); err != nil {
		return 0, err
	}
	return uint16(rsAndRd<<12 | ro<<8 | opcode), nil
}

// BuildTinyInsn packs the 16-bit TINY form:
// [rs_and_rd:4 | imm:4 | opcode:7] (top bit = 0).
func BuildTinyInsn(rsAndRd, imm, opcode int64) (uint16, error) {
	if err := verifyRegister("rs_and_rd", rsAndRd); err != nil {
		return 0, err
	}
	if err := verifyOpcode(opcode); err != nil {
		return 0, err
	}
	if !Fits(imm, 4) {
		return 0, outOfRange("imm", imm, 1<<3-1)
	}
	return uint16(rsAndRd<<12 | (imm&0b1111)<<8 | opcode), nil
}

// BuildLongInsn packs the 32-bit LONG form:
// [rd:4 | imm:12 | rs:4 | ro:4 | 1 | opcode:7].
func BuildLongInsn(rd, imm, rs, ro, opcode int64) (uint32, error) {
	if err := verifyRegister("rd", rd); err != nil {
		return 0, err
	}
	if err := verifyRegister("rs", rs); err != nil {
		return 0, err
	}
	if err := verifyRegister("ro", ro); err != nil {
		return 0, err
	}
	if err := verifyOpcode(opcode); err != nil {
		return 0, err
	}
	if !Fits(imm, 12) {
		return 0, outOfRange("imm", imm, 1<<11-1)
	}
	imm &= 1<<12 - 1
	return uint32(rd<<28 | imm<<16 | rs<<12 | ro<<8 | 1<<7 | opcode), nil
}

// BuildBigInsn packs the 32-bit BIG form: [rd:4 | imm:20 | 1 | opcode:7].
func BuildBigInsn(rd, imm, opcode int64) (uint32, error) {
	if err := verifyRegister("rd", rd); err != nil {
		return 0, err
	}
	if err := verifyOpcode(opcode); err != nil {
		return 0, err
	}
	if !Fits(imm, 20) {
		return 0, outOfRange("imm", imm, 1<<19-1)
	}
	imm &= 1<<20 - 1
	return uint32(rd<<28 | imm<<8 | 1<<7 | opcode), nil
}

// BuildMedInsn packs the 32-bit MED form:
// [rd:4 | imm:16 | ro:4 | 1 | opcode:7].
func BuildMedInsn(rd, imm, ro, opcode int64) (uint32, error) {
	if err := verifyRegister("rd", rd); err != nil {
		return 0, err
	}
	if err := verifyRegister("ro", ro); err != nil {
		return 0, err
	}
	if err := verifyOpcode(opcode); err != nil {
		return 0, err
	}
	if !Fits(imm, 16) {
		return 0, outOfRange("imm", imm, 1<<15-1)
	}
	imm &= 1<<16 - 1
	return uint32(rd<<28 | imm<<12 | ro<<8 | 1<<7 | opcode), nil
}

// BuildMsmInsn packs the 32-bit MSM form:
// [rd:4 | imm:14 | FF:2 | ro:4 | 1 | opcode:7].
//
// The field widths sum to exactly 32 bits with no overlap only when
// imm is shifted by 14, not 15: rd occupies bits 31-28, so a 14-bit
// imm must start at bit 27 and run down to bit 14, immediately above
// FF's two bits at 13-12. Shifting by 15 instead would clobber rd's
// low bit, and is not what this builder does.
func BuildMsmInsn(rd, imm, ff, ro, opcode int64) (uint32, error) {
	if err := verifyRegister("rd", rd); err != nil {
		return 0, err
	}
	if err := verifyRegister("ro", ro); err != nil {
		return 0, err
	}
	if err := verifyFF(ff); err != nil {
		return 0, err
	}
	if err := verifyOpcode(opcode); err != nil {
		return 0, err
	}
	if !Fits(imm, 14) {
		return 0, outOfRange("imm", imm, 1<<13-1)
	}
	imm &= 1<<14 - 1
	return uint32(rd<<28 | imm<<14 | ff<<12 | ro<<8 | 1<<7 | opcode), nil
}

// BuildSmInsn packs the 32-bit SM form:
// [rd:4 | imm:10 | FF:2 | rs:4 | ro:4 | 1 | opcode:7].
func BuildSmInsn(rd, imm, ff, rs, ro, opcode int64) (uint32, error) {
	if err := verifyRegister("rd", rd); err != nil {
		return 0, err
	}
	if err := verifyRegister("rs", rs); err != nil {
		return 0, err
	}
	if err := verifyRegister("ro", ro); err != nil {
		return 0, err
	}
	if err := verifyFF(ff); err != nil {
		return 0, err
	}
	if err := verifyOpcode(opcode); err != nil {
		return 0, err
	}
	if !Fits(imm, 10) {
		return 0, outOfRange("imm", imm, 1<<9-1)
	}
	imm &= 1<<10 - 1
	return uint32(rd<<28 | imm<<18 | ff<<16 | rs<<12 | ro<<8 | 1<<7 | opcode), nil
}
