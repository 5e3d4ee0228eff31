// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// Witness is the stack of items carried by one SegWit input: a
// CompactSize count followed by that many CompactSize-prefixed byte
// strings. A legacy (pre-SegWit) transaction has no witnesses at all; an
// input within a SegWit transaction that has no stack items of its own
// still carries an explicit, possibly-empty Witness.
type Witness struct {
	items [][]byte
}

// Len returns the number of stack items.
func (w Witness) Len() int {
	return len(w.items)
}

// Item returns the i'th stack item, aliasing the original parse buffer.
func (w Witness) Item(i int) []byte {
	return w.items[i]
}

// Items returns every stack item, in order. The returned slice aliases
// w's own backing array, not the caller's.
func (w Witness) Items() [][]byte {
	return w.items
}

// ParseWitness reads one input's witness stack from the front of b: a
// CompactSize item count followed by that many CompactSize-prefixed byte
// strings.
func ParseWitness(b []byte) (Witness, []byte, error) {
	items, rest, n, err := parseVector(b, func(b []byte, index int) (Script, []byte, error) {
		return ParseScript(b)
	}, nil)
	if err != nil {
		return Witness{}, nil, err
	}
	raw := make([][]byte, n)
	for i, s := range items {
		raw[i] = s.Bytes()
	}
	return Witness{items: raw}, rest, nil
}

// parseWitnesses reads numInputs consecutive Witness stacks, firing
// visitOne (if non-nil) after each one is parsed. Unlike inputs and
// outputs, witnesses have no CompactSize count of their own: there is
// exactly one witness per input, in input order, and that count is
// already known from the number of inputs already parsed.
func parseWitnesses(b []byte, numInputs int, visitOne func(inputIndex int, w *Witness)) ([]Witness, []byte, error) {
	witnesses := make([]Witness, 0, numInputs)
	rest := b
	for i := 0; i < numInputs; i++ {
		w, next, err := ParseWitness(rest)
		if err != nil {
			return nil, nil, err
		}
		witnesses = append(witnesses, w)
		if visitOne != nil {
			visitOne(i, &witnesses[len(witnesses)-1])
		}
		rest = next
	}
	return witnesses, rest, nil
}
