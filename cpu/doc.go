// Package cpu implements the processor model and assembler for the dos86 system.
//
// The CPU is the 8086 subset a tiny-model .COM program can see: 64KiB of flat
// memory, the eight 16-bit registers with their 8-bit views, and the zero,
// sign and carry flags. Instructions are decoded from their real 8086
// encodings. Software interrupts dispatch to pluggable Service handlers,
// which is how the DOS layer is attached.
//
// The assembler provides a NASM-flavored assembly dialect for that subset,
// supporting macros, labels, equates, and compile-time expression evaluation.
package cpu
