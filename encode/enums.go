package encode

// Subtype names one of the seven fixed bit layouts the ISA defines.
// SHORT and TINY pack into a 16-bit word; the rest pack into 32 bits
// with bit 7 set to distinguish them from the 16-bit forms.
type Subtype int

const (
	SHORT Subtype = iota
	TINY
	LONG
	BIG
	MED
	MSM
	SM
)

func (s Subtype) String() string {
	switch s {
	case SHORT:
		return "SHORT"
	case TINY:
		return "TINY"
	case LONG:
		return "LONG"
	case BIG:
		return "BIG"
	case MED:
		return "MED"
	case MSM:
		return "MSM"
	case SM:
		return "SM"
	default:
		return "?"
	}
}

// Length returns the encoded width of the subtype in bytes.
func (s Subtype) Length() int {
	switch s {
	case SHORT, TINY:
		return 2
	default:
		return 4
	}
}

// LoadStoreKind selects between a load and a store operation.
type LoadStoreKind uint32

const (
	Load  LoadStoreKind = 0
	Store LoadStoreKind = 1
)

// LoadStoreSize selects the memory access width.
type LoadStoreSize uint32

const (
	Byte     LoadStoreSize = 0
	Halfword LoadStoreSize = 1
)

// LoadStoreDest selects how a loaded value is widened into the
// destination register, or which half of it a store reads from.
// The 0b10 bit (LOWW) must be set for any STORE: zero/sign-extension
// is a load-only concept, so a store with it unset is meaningless.
type LoadStoreDest uint32

const (
	Zext  LoadStoreDest = 0b00
	Sext  LoadStoreDest = 0b01
	LowW  LoadStoreDest = 0b10
	HighW LoadStoreDest = 0b11
)

// AddressMode selects between an indexed (GENERIC) and a
// constant-offset (SIMPLE) load/store addressing form.
type AddressMode uint32

const (
	Generic AddressMode = 0
	Simple  AddressMode = 1
)

// AluOp enumerates the twelve ALU operation codes.
type AluOp uint32

const (
	Add  AluOp = 0b0000
	Sub  AluOp = 0b0001
	Sl   AluOp = 0b0010
	Sr   AluOp = 0b0011
	Lsl  AluOp = 0b0100
	Lsr  AluOp = 0b0101
	Or   AluOp = 0b1000
	Eor  AluOp = 0b1001
	And  AluOp = 0b1010
	Nor  AluOp = 0b1100
	Enor AluOp = 0b1101
	Nand AluOp = 0b1110
)

// AluStyle selects which operand-2/3 shape an ALU instruction packs.
type AluStyle uint32

const (
	Reg   AluStyle = 0b00
	Imm   AluStyle = 0b01
	RegSl AluStyle = 0b10
	RegSr AluStyle = 0b11
)

// MovOp selects the mov/jump opcode family.
type MovOp uint32

const (
	Mimm MovOp = 0b00
	Jump MovOp = 0b01
	Mrs  MovOp = 0b10
	Mro  MovOp = 0b11
)

// MovCond is a 3-bit condition code gating mov/jump execution.
type MovCond uint32

const (
	Lt  MovCond = 0b000
	Slt MovCond = 0b001
	Ge  MovCond = 0b010
	Sge MovCond = 0b011
	Eq  MovCond = 0b100
	Neq MovCond = 0b101
	Bs  MovCond = 0b110
	Al  MovCond = 0b111
)
