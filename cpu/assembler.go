package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// LinkKind selects how a label reference is patched into an opcode.
type LinkKind int

//go:generate go tool stringer -linecomment -type=LinkKind
const (
	LINK_NONE  = LinkKind(0) // none
	LINK_ABS16 = LinkKind(1) // abs16
	LINK_REL8  = LinkKind(2) // rel8
	LINK_REL16 = LinkKind(3) // rel16
)

// Opcode represents a line of assembled code with its source location and
// generated bytes.
type Opcode struct {
	LineNo     int
	Addr       int
	Words      []string
	Bytes      []byte
	LinkLabel  string
	LinkAddend int
	LinkKind   LinkKind
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass macro assembler for the dos86 dialect.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.
	Origin  int      // Load address of the first opcode.

	predefine map[string]string   // Predefines
	Label     map[string]int      // Map of jump labels to addresses.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// reg8Map maps 8-bit register names.
var reg8Map = map[string]Reg8{
	"al": REG_AL,
	"cl": REG_CL,
	"dl": REG_DL,
	"bl": REG_BL,
	"ah": REG_AH,
	"ch": REG_CH,
	"dh": REG_DH,
	"bh": REG_BH,
}

// reg16Map maps 16-bit register names.
var reg16Map = map[string]Reg16{
	"ax": REG_AX,
	"cx": REG_CX,
	"dx": REG_DX,
	"bx": REG_BX,
	"sp": REG_SP,
	"bp": REG_BP,
	"si": REG_SI,
	"di": REG_DI,
}

var labelRe = regexp.MustCompile(`^[A-Za-z_.][A-Za-z0-9_.]*$`)

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint16, err error) {
	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}
	if word[0] == '\'' {
		// Character quotes should have been expanded into
		// values in parseLine()
		err = ErrParseCharacter(strings.Trim(word, "'"))
		return
	}

	var v64 int64
	last := word[len(word)-1]
	if (last == 'h' || last == 'H') && word[0] >= '0' && word[0] <= '9' {
		// NASM hex suffix: 100h, 4c00h
		var u64 uint64
		u64, err = strconv.ParseUint(word[:len(word)-1], 16, 16)
		v64 = int64(u64)
	} else {
		v64, err = strconv.ParseInt(word, 0, 17)
	}
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 < 0 {
		value = uint16(0xffff + (v64 + 1))
	} else {
		value = uint16(v64)
	}

	if invert {
		value = ^value
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value16 uint16
		value16, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(int(value16))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint16(st_int64)
	return
}

// stripComment removes a ';' comment, honoring single-quoted strings.
func stripComment(line string) string {
	quoted := false
	for n, r := range line {
		switch {
		case r == '\'':
			quoted = !quoted
		case r == ';' && !quoted:
			return line[:n]
		}
	}

	return line
}

// currentAddr gets the address of the next emitted opcode.
func (asm *Assembler) currentAddr() int {
	if len(asm.Opcode) == 0 {
		return asm.Origin
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Addr + len(last.Bytes)
}

// defineLabel records a label at the current address.
func (asm *Assembler) defineLabel(label string) (err error) {
	_, ok := asm.Label[label]
	if ok {
		err = ErrLabelDuplicate
		return
	}

	if asm.Label == nil {
		asm.Label = make(map[string]int, 16)
	}
	asm.Label[label] = asm.currentAddr()

	return
}

// parseData parses the payload of a 'db' directive: a comma separated list
// of single-quoted strings, numbers, and equates.
func (asm *Assembler) parseData(payload string) (data []byte, err error) {
	var items []string
	quoted := false
	start := 0
	for n, r := range payload {
		switch {
		case r == '\'':
			quoted = !quoted
		case r == ',' && !quoted:
			items = append(items, payload[start:n])
			start = n + 1
		}
	}
	items = append(items, payload[start:])

	for _, item := range items {
		item = strings.TrimSpace(item)
		if len(item) == 0 {
			err = ErrDataSyntax
			return
		}

		if item[0] == '\'' {
			if len(item) < 2 || item[len(item)-1] != '\'' {
				err = ErrDataSyntax
				return
			}
			data = append(data, []byte(item[1:len(item)-1])...)
			continue
		}

		word := item
		equate, ok := asm.Equate[word]
		if ok {
			word = equate
		}
		var value uint16
		value, err = asm.valueOf(word)
		if err != nil {
			return
		}
		if value > 0xff {
			err = ErrOperandWidth
			return
		}
		data = append(data, uint8(value))
	}

	return
}

// parseDb handles a 'db' line, registering its label (if any) and emitting
// the data bytes as an opcode.
func (asm *Assembler) parseDb(line string, fields []string, lineno int) (err error) {
	rest := strings.TrimSpace(line)
	if fields[0] != "db" {
		label := strings.TrimSuffix(fields[0], ":")
		err = asm.defineLabel(label)
		if err != nil {
			return
		}
		rest = strings.TrimSpace(rest[len(fields[0]):])
	}
	rest = strings.TrimSpace(rest[len("db"):])
	if len(rest) == 0 {
		err = ErrDataSyntax
		return
	}

	data, err := asm.parseData(rest)
	if err != nil {
		return
	}

	opcode := Opcode{LineNo: lineno, Addr: asm.currentAddr(), Words: fields, Bytes: data}
	asm.Opcode = append(asm.Opcode, opcode)

	return
}

// parseLine parses a single line as an opcode.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	// Data lines carry quoted strings with spaces, and bypass the
	// word machinery entirely.
	if fields[0] == "db" || (len(fields) >= 2 && fields[1] == "db") {
		err = asm.parseDb(line, fields, lineno)
		return
	}

	// Do 'x' evaluations
	re := regexp.MustCompile(`'\\?[^']'`)
	line = re.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	re = regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	words = strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})

	if len(words) == 0 {
		return
	}

	// NAME equ VALUE
	if len(words) == 3 && words[1] == "equ" {
		_, ok := asm.Equate[words[0]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[0]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		if len(word) == 0 || word[0] == '[' {
			continue
		}

		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		err = asm.defineLabel(label)
		if err != nil {
			return
		}
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = words[1+n]
		}
		defer func() { asm.Equate = old_equate }()

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", fmt.Sprintf("%v_%v_", name, lineno))
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = ErrMacro{Macro: name, Line: lineno, Err: err}
				err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}

			err = asm.parseWords(words, macro.LineNo+n)
			if err != nil {
				err = ErrMacro{Macro: name, Line: lineno, Err: err}
				err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	asm.Origin = COM_ORIGIN
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(stripComment(text))
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Final linking of label references.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		if op.LinkKind == LINK_NONE {
			continue
		}
		label := op.LinkLabel
		addr, ok := asm.Label[label]
		if !ok {
			err = ErrLabelMissing(label)
			return
		}
		target := addr + op.LinkAddend
		last := len(op.Bytes)

		switch op.LinkKind {
		case LINK_ABS16:
			op.Bytes[last-2] = uint8(target)
			op.Bytes[last-1] = uint8(target >> 8)
		case LINK_REL8:
			rel := target - (op.Addr + last)
			if rel < -128 || rel > 127 {
				err = ErrBranchRange(rel)
				return
			}
			op.Bytes[last-1] = uint8(int8(rel))
		case LINK_REL16:
			rel := target - (op.Addr + last)
			op.Bytes[last-2] = uint8(rel)
			op.Bytes[last-1] = uint8(rel >> 8)
		}
	}

	prog = &Program{
		Origin:  uint16(asm.Origin),
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// asmOperand is a parsed operand with an optional pending label reference.
type asmOperand struct {
	op        Operand
	fixLabel  string
	fixAddend int
}

// parseOperand parses a register, memory, immediate, or label operand.
func (asm *Assembler) parseOperand(word string) (aop asmOperand, err error) {
	if reg, ok := reg8Map[word]; ok {
		aop.op = RegOperand8(reg)
		return
	}
	if reg, ok := reg16Map[word]; ok {
		aop.op = RegOperand16(reg)
		return
	}

	if word[0] == '[' {
		if word[len(word)-1] != ']' {
			err = ErrParseValue(word)
			return
		}
		inner := word[1 : len(word)-1]

		// LABEL, LABEL+n, LABEL-n, or a plain address.
		base := inner
		addend := 0
		if at := strings.IndexAny(inner[1:], "+-"); at >= 0 {
			at++
			base = inner[:at]
			var value uint16
			value, err = asm.resolveValue(inner[at+1:])
			if err != nil {
				return
			}
			addend = int(value)
			if inner[at] == '-' {
				addend = -addend
			}
		}

		var value uint16
		value, err = asm.resolveValue(base)
		if err == nil {
			aop.op = MemOperand(uint16(int(value) + addend))
			return
		}
		if !labelRe.MatchString(base) {
			return
		}

		err = nil
		aop.op = MemOperand(0)
		aop.fixLabel = base
		aop.fixAddend = addend
		return
	}

	value, err := asm.valueOf(word)
	if err == nil {
		aop.op = ImmOperand(value)
		return
	}
	if !labelRe.MatchString(word) {
		return
	}

	err = nil
	aop.op = ImmOperand(0)
	aop.fixLabel = word
	return
}

// resolveValue resolves an equate name or numeric literal.
func (asm *Assembler) resolveValue(word string) (value uint16, err error) {
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}
	equate, ok := asm.Equate[word]
	if ok {
		word = equate
	}
	return asm.valueOf(word)
}

// asmAluBase maps two-operand ALU mnemonics to their reg/mem opcode base
// and 0x80-group ModRM extension.
var asmAluBase = map[string](struct {
	base uint8
	ext  uint8
}){
	"add": {0x00, 0},
	"sub": {0x28, 5},
	"cmp": {0x38, 7},
}

// encodeMem appends a direct-address ModRM form.
func encodeMem(opcode uint8, reg uint8, disp uint16) []byte {
	return []byte{opcode, MakeModRM(0, reg, 6), uint8(disp), uint8(disp >> 8)}
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var bytes []byte
	var label string
	var addend int
	kind := LINK_NONE

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if len(bytes) == 0 {
			return
		}
		opcode := Opcode{LineNo: lineno, Addr: asm.currentAddr(), Words: initial_words,
			Bytes: bytes, LinkLabel: label, LinkAddend: addend, LinkKind: kind}
		asm.Opcode = append(asm.Opcode, opcode)
	}()

	// Two-operand instructions share the operand parse.
	parse2 := func() (dst, src asmOperand, err error) {
		if len(words) < 3 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(words) > 3 {
			err = ErrOpcodeExtraArgs
			return
		}
		dst, err = asm.parseOperand(words[1])
		if err != nil {
			return
		}
		src, err = asm.parseOperand(words[2])
		return
	}

	switch words[0] {
	case "org":
		if len(words) != 2 {
			err = ErrOrgSyntax
			return
		}
		if len(asm.Opcode) != 0 {
			err = ErrOrgTooLate
			return
		}
		var value uint16
		value, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		asm.Origin = int(value)
	case "section":
		// Sections are accepted for source compatibility; addresses
		// are assigned linearly.
		if len(words) != 2 {
			err = ErrOpcodeValueMissing
			return
		}
	case "mov":
		var dst, src asmOperand
		dst, src, err = parse2()
		if err != nil {
			return
		}

		switch {
		case dst.op.Kind == OPERAND_REG8 && src.op.Kind == OPERAND_IMM:
			if src.fixLabel != "" {
				err = ErrOperandWidth
				return
			}
			if src.op.Value > 0xff {
				err = ErrOperandWidth
				return
			}
			bytes = []byte{0xB0 + uint8(dst.op.Reg8), uint8(src.op.Value)}
		case dst.op.Kind == OPERAND_REG16 && src.op.Kind == OPERAND_IMM:
			bytes = []byte{0xB8 + uint8(dst.op.Reg16), uint8(src.op.Value), uint8(src.op.Value >> 8)}
			if src.fixLabel != "" {
				label, addend, kind = src.fixLabel, src.fixAddend, LINK_ABS16
			}
		case dst.op.Kind == OPERAND_REG8 && src.op.Kind == OPERAND_REG8:
			bytes = []byte{0x8A, MakeModRM(3, uint8(dst.op.Reg8), uint8(src.op.Reg8))}
		case dst.op.Kind == OPERAND_REG16 && src.op.Kind == OPERAND_REG16:
			bytes = []byte{0x8B, MakeModRM(3, uint8(dst.op.Reg16), uint8(src.op.Reg16))}
		case dst.op.Kind == OPERAND_REG8 && src.op.Kind == OPERAND_MEM:
			bytes = encodeMem(0x8A, uint8(dst.op.Reg8), src.op.Value)
			if src.fixLabel != "" {
				label, addend, kind = src.fixLabel, src.fixAddend, LINK_ABS16
			}
		case dst.op.Kind == OPERAND_REG16 && src.op.Kind == OPERAND_MEM:
			bytes = encodeMem(0x8B, uint8(dst.op.Reg16), src.op.Value)
			if src.fixLabel != "" {
				label, addend, kind = src.fixLabel, src.fixAddend, LINK_ABS16
			}
		case dst.op.Kind == OPERAND_MEM && src.op.Kind == OPERAND_REG8:
			bytes = encodeMem(0x88, uint8(src.op.Reg8), dst.op.Value)
			if dst.fixLabel != "" {
				label, addend, kind = dst.fixLabel, dst.fixAddend, LINK_ABS16
			}
		case dst.op.Kind == OPERAND_MEM && src.op.Kind == OPERAND_REG16:
			bytes = encodeMem(0x89, uint8(src.op.Reg16), dst.op.Value)
			if dst.fixLabel != "" {
				label, addend, kind = dst.fixLabel, dst.fixAddend, LINK_ABS16
			}
		default:
			err = ErrOperandCombo
			return
		}
	case "add", "sub", "cmp":
		family := asmAluBase[words[0]]
		var dst, src asmOperand
		dst, src, err = parse2()
		if err != nil {
			return
		}

		switch {
		case dst.op.Kind == OPERAND_REG8 && src.op.Kind == OPERAND_IMM:
			if src.fixLabel != "" || src.op.Value > 0xff {
				err = ErrOperandWidth
				return
			}
			bytes = []byte{0x80, MakeModRM(3, family.ext, uint8(dst.op.Reg8)), uint8(src.op.Value)}
		case dst.op.Kind == OPERAND_REG16 && src.op.Kind == OPERAND_IMM:
			bytes = []byte{0x81, MakeModRM(3, family.ext, uint8(dst.op.Reg16)),
				uint8(src.op.Value), uint8(src.op.Value >> 8)}
			if src.fixLabel != "" {
				label, addend, kind = src.fixLabel, src.fixAddend, LINK_ABS16
			}
		case dst.op.Kind == OPERAND_REG8 && src.op.Kind == OPERAND_REG8:
			bytes = []byte{family.base + 2, MakeModRM(3, uint8(dst.op.Reg8), uint8(src.op.Reg8))}
		case dst.op.Kind == OPERAND_REG16 && src.op.Kind == OPERAND_REG16:
			bytes = []byte{family.base + 3, MakeModRM(3, uint8(dst.op.Reg16), uint8(src.op.Reg16))}
		case dst.op.Kind == OPERAND_REG8 && src.op.Kind == OPERAND_MEM:
			bytes = encodeMem(family.base+2, uint8(dst.op.Reg8), src.op.Value)
			if src.fixLabel != "" {
				label, addend, kind = src.fixLabel, src.fixAddend, LINK_ABS16
			}
		case dst.op.Kind == OPERAND_REG16 && src.op.Kind == OPERAND_MEM:
			bytes = encodeMem(family.base+3, uint8(dst.op.Reg16), src.op.Value)
			if src.fixLabel != "" {
				label, addend, kind = src.fixLabel, src.fixAddend, LINK_ABS16
			}
		case dst.op.Kind == OPERAND_MEM && src.op.Kind == OPERAND_REG8:
			bytes = encodeMem(family.base, uint8(src.op.Reg8), dst.op.Value)
			if dst.fixLabel != "" {
				label, addend, kind = dst.fixLabel, dst.fixAddend, LINK_ABS16
			}
		case dst.op.Kind == OPERAND_MEM && src.op.Kind == OPERAND_REG16:
			bytes = encodeMem(family.base+1, uint8(src.op.Reg16), dst.op.Value)
			if dst.fixLabel != "" {
				label, addend, kind = dst.fixLabel, dst.fixAddend, LINK_ABS16
			}
		default:
			err = ErrOperandCombo
			return
		}
	case "inc", "dec":
		if len(words) != 2 {
			err = ErrOpcodeValueMissing
			return
		}
		var dst asmOperand
		dst, err = asm.parseOperand(words[1])
		if err != nil {
			return
		}
		base := uint8(0x40)
		ext := uint8(0)
		if words[0] == "dec" {
			base = 0x48
			ext = 1
		}
		switch dst.op.Kind {
		case OPERAND_REG16:
			bytes = []byte{base + uint8(dst.op.Reg16)}
		case OPERAND_REG8:
			bytes = []byte{0xFE, MakeModRM(3, ext, uint8(dst.op.Reg8))}
		default:
			err = ErrOperandCombo
			return
		}
	case "push", "pop":
		if len(words) != 2 {
			err = ErrOpcodeValueMissing
			return
		}
		reg, ok := reg16Map[words[1]]
		if !ok {
			err = ErrOperandCombo
			return
		}
		base := uint8(0x50)
		if words[0] == "pop" {
			base = 0x58
		}
		bytes = []byte{base + uint8(reg)}
	case "jmp", "je", "jne":
		opcode := map[string]uint8{"jmp": 0xEB, "je": 0x74, "jne": 0x75}[words[0]]
		args := words[1:]
		if len(args) >= 1 && args[0] == "short" {
			args = args[1:]
		}
		if len(args) < 1 {
			err = ErrTargetMissing
			return
		}
		if len(args) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		value, verr := asm.resolveValue(args[0])
		if verr == nil {
			// Numeric absolute target.
			rel := int(value) - (asm.currentAddr() + 2)
			if rel < -128 || rel > 127 {
				err = ErrBranchRange(rel)
				return
			}
			bytes = []byte{opcode, uint8(int8(rel))}
			return
		}
		if !labelRe.MatchString(args[0]) {
			err = ErrParseValue(args[0])
			return
		}
		bytes = []byte{opcode, 0}
		label, kind = args[0], LINK_REL8
	case "call":
		if len(words) != 2 {
			err = ErrTargetMissing
			return
		}
		value, verr := asm.resolveValue(words[1])
		if verr == nil {
			rel := int(value) - (asm.currentAddr() + 3)
			bytes = []byte{0xE8, uint8(rel), uint8(rel >> 8)}
			return
		}
		if !labelRe.MatchString(words[1]) {
			err = ErrParseValue(words[1])
			return
		}
		bytes = []byte{0xE8, 0, 0}
		label, kind = words[1], LINK_REL16
	case "int":
		if len(words) != 2 {
			err = ErrOpcodeValueMissing
			return
		}
		var value uint16
		value, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		if value > 0xff {
			err = ErrOperandWidth
			return
		}
		bytes = []byte{0xCD, uint8(value)}
	case "ret":
		if len(words) != 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		bytes = []byte{0xC3}
	case "nop":
		if len(words) != 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		bytes = []byte{0x90}
	default:
		err = ErrInstructionInvalid
		return
	}

	return
}
