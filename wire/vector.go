// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// parseVector reads a CompactSize count n followed by n consecutive
// T-parses, invoking visitOne after each element with its zero-based index.
// There is no upper bound on n other than the remaining buffer length: the
// parse is self-limiting because every element consumes at least one byte,
// so an over-large count exhausts the buffer and fails with
// ErrUnexpectedEOF rather than looping or over-allocating. The backing
// slice capacity hint is clamped to the remaining buffer length for the
// same reason — a hostile count larger than the buffer can't be used to
// force a multi-gigabyte allocation ahead of validation.
func parseVector[T any](b []byte, parseOne func(b []byte, index int) (T, []byte, error), visitOne func(index int, item *T)) ([]T, []byte, uint64, error) {
	size, rest, err := ParseCompactSize(b)
	if err != nil {
		return nil, nil, 0, err
	}

	n := size.N()
	capHint := n
	if capHint > uint64(len(rest)) {
		capHint = uint64(len(rest))
	}
	items := make([]T, 0, capHint)

	for i := uint64(0); i < n; i++ {
		item, next, err := parseOne(rest, int(i))
		if err != nil {
			return nil, nil, 0, err
		}
		items = append(items, item)
		if visitOne != nil {
			visitOne(int(i), &items[len(items)-1])
		}
		rest = next
	}

	return items, rest, n, nil
}
