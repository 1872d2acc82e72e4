// core/fasta/validate.go
package fasta

import "fmt"

// iupacNucleotide covers the IUPAC nucleotide codes, including U and the
// ambiguity symbols, matching what the parser accepts in sequence lines.
var iupacNucleotide = [256]bool{
	'A': true, 'C': true, 'G': true, 'T': true, 'U': true,
	'R': true, 'Y': true, 'K': true, 'M': true, 'S': true, 'W': true,
	'B': true, 'D': true, 'H': true, 'V': true, 'N': true,
}

// ValidateSeq rejects any symbol outside the IUPAC nucleotide alphabet.
// Input is expected to be upper-cased already.
func ValidateSeq(seq []byte) error {
	for i, b := range seq {
		if !iupacNucleotide[b] {
			return fmt.Errorf("invalid nucleotide %q at position %d", b, i+1)
		}
	}
	return nil
}
