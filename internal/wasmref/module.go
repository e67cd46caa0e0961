package wasmref

// WebAssembly binary encoding constants.
const (
	valI32 byte = 0x7f
	valI64 byte = 0x7e
	valF32 byte = 0x7d
	valF64 byte = 0x7c

	sectionType     byte = 0x01
	sectionFunction byte = 0x03
	sectionMemory   byte = 0x05
	sectionExport   byte = 0x07
	sectionCode     byte = 0x0a

	kindFunc   byte = 0x00
	kindMemory byte = 0x02

	opLocalGet byte = 0x20
	opEnd      byte = 0x0b
	opPrefixFC byte = 0xfc
)

// routine is one exported function of the reference module.
type routine struct {
	name    string
	params  []byte
	results []byte
	code    []byte // instructions after the parameter loads, without end
}

// conversions maps each builtins symbol to the WebAssembly instruction with
// the same semantics. The trunc_sat forms saturate out-of-range inputs and
// map negative inputs of unsigned destinations to zero.
var conversions = []routine{
	{"__floatsisf", []byte{valI32}, []byte{valF32}, []byte{0xb2}},
	{"__floatsidf", []byte{valI32}, []byte{valF64}, []byte{0xb7}},
	{"__floatdisf", []byte{valI64}, []byte{valF32}, []byte{0xb4}},
	{"__floatdidf", []byte{valI64}, []byte{valF64}, []byte{0xb9}},
	{"__floatunsisf", []byte{valI32}, []byte{valF32}, []byte{0xb3}},
	{"__floatunsidf", []byte{valI32}, []byte{valF64}, []byte{0xb8}},
	{"__floatundisf", []byte{valI64}, []byte{valF32}, []byte{0xb5}},
	{"__floatundidf", []byte{valI64}, []byte{valF64}, []byte{0xba}},
	{"__fixsfsi", []byte{valF32}, []byte{valI32}, []byte{opPrefixFC, 0x00}},
	{"__fixunssfsi", []byte{valF32}, []byte{valI32}, []byte{opPrefixFC, 0x01}},
	{"__fixdfsi", []byte{valF64}, []byte{valI32}, []byte{opPrefixFC, 0x02}},
	{"__fixunsdfsi", []byte{valF64}, []byte{valI32}, []byte{opPrefixFC, 0x03}},
	{"__fixsfdi", []byte{valF32}, []byte{valI64}, []byte{opPrefixFC, 0x04}},
	{"__fixunssfdi", []byte{valF32}, []byte{valI64}, []byte{opPrefixFC, 0x05}},
	{"__fixdfdi", []byte{valF64}, []byte{valI64}, []byte{opPrefixFC, 0x06}},
	{"__fixunsdfdi", []byte{valF64}, []byte{valI64}, []byte{opPrefixFC, 0x07}},
}

// Bulk memory routines: (dst, src|value, n) -> ().
var memoryOps = []routine{
	{exportMemmove, []byte{valI32, valI32, valI32}, nil, []byte{opPrefixFC, 0x0a, 0x00, 0x00}},
	{exportMemset, []byte{valI32, valI32, valI32}, nil, []byte{opPrefixFC, 0x0b, 0x00}},
}

const (
	exportMemmove = "memmove"
	exportMemset  = "memset"
	exportMemory  = "memory"
)

// buildModule assembles the reference module: one function per routine, a
// single exported linear memory of MemoryPages pages.
func buildModule(routines []routine) []byte {
	var wasm []byte

	// Magic and version
	wasm = append(wasm, 0x00, 0x61, 0x73, 0x6d)
	wasm = append(wasm, 0x01, 0x00, 0x00, 0x00)

	wasm = appendSection(wasm, sectionType, buildTypeSection(routines))
	wasm = appendSection(wasm, sectionFunction, buildFuncSection(routines))
	wasm = appendSection(wasm, sectionMemory, buildMemorySection())
	wasm = appendSection(wasm, sectionExport, buildExportSection(routines))
	wasm = appendSection(wasm, sectionCode, buildCodeSection(routines))
	return wasm
}

func appendSection(wasm []byte, id byte, section []byte) []byte {
	wasm = append(wasm, id)
	wasm = append(wasm, encodeULEB128(uint32(len(section)))...)
	return append(wasm, section...)
}

// buildTypeSection emits one function type per routine; duplicates are
// legal and keep type index == function index.
func buildTypeSection(routines []routine) []byte {
	section := encodeULEB128(uint32(len(routines)))
	for _, r := range routines {
		section = append(section, 0x60)
		section = append(section, encodeULEB128(uint32(len(r.params)))...)
		section = append(section, r.params...)
		section = append(section, encodeULEB128(uint32(len(r.results)))...)
		section = append(section, r.results...)
	}
	return section
}

func buildFuncSection(routines []routine) []byte {
	section := encodeULEB128(uint32(len(routines)))
	for i := range routines {
		section = append(section, encodeULEB128(uint32(i))...)
	}
	return section
}

func buildMemorySection() []byte {
	section := encodeULEB128(1)
	section = append(section, 0x00) // limits: min only
	return append(section, encodeULEB128(MemoryPages)...)
}

func buildExportSection(routines []routine) []byte {
	section := encodeULEB128(uint32(len(routines) + 1))
	for i, r := range routines {
		section = appendName(section, r.name)
		section = append(section, kindFunc)
		section = append(section, encodeULEB128(uint32(i))...)
	}
	section = appendName(section, exportMemory)
	section = append(section, kindMemory)
	return append(section, 0x00)
}

func buildCodeSection(routines []routine) []byte {
	section := encodeULEB128(uint32(len(routines)))
	for _, r := range routines {
		body := []byte{0x00} // no locals
		for i := range r.params {
			body = append(body, opLocalGet)
			body = append(body, encodeULEB128(uint32(i))...)
		}
		body = append(body, r.code...)
		body = append(body, opEnd)

		section = append(section, encodeULEB128(uint32(len(body)))...)
		section = append(section, body...)
	}
	return section
}

func appendName(b []byte, name string) []byte {
	b = append(b, encodeULEB128(uint32(len(name)))...)
	return append(b, name...)
}

// encodeULEB128 encodes v as unsigned LEB128.
func encodeULEB128(v uint32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if v == 0 {
			return out
		}
	}
}
