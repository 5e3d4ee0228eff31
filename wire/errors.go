// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "fmt"

// ErrorKind identifies the closed set of ways a parse can fail. Callers that
// want to branch on the failure reason should compare against these values
// rather than matching on an error string.
type ErrorKind int

const (
	// ErrUnexpectedEOF means the buffer ran out of bytes before a
	// fixed-width read, a length-prefixed read, or a vector element could
	// be completed.
	ErrUnexpectedEOF ErrorKind = iota

	// ErrNonCanonicalVarInt means a CompactSize was encoded with more
	// bytes than its value required.
	ErrNonCanonicalVarInt

	// ErrInvalidSegWitFlag means the SegWit marker byte (0x00) was not
	// followed by a flag byte equal to 0x01.
	ErrInvalidSegWitFlag

	// ErrInvalidSegWitInputs means a SegWit-marked transaction had zero
	// inputs immediately after the marker/flag, which is ambiguous with a
	// legacy zero-input transaction and therefore rejected.
	ErrInvalidSegWitInputs

	// ErrTrailingBytes means a top-level parse that requires full
	// consumption of the buffer found bytes left over after the object
	// was parsed.
	ErrTrailingBytes

	// ErrWitnessCountMismatch means the number of witnesses parsed for a
	// SegWit transaction did not equal its input count.
	ErrWitnessCountMismatch
)

// String returns a short human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnexpectedEOF:
		return "unexpected end of buffer"
	case ErrNonCanonicalVarInt:
		return "non-canonical CompactSize"
	case ErrInvalidSegWitFlag:
		return "invalid SegWit flag"
	case ErrInvalidSegWitInputs:
		return "invalid SegWit inputs"
	case ErrTrailingBytes:
		return "trailing bytes"
	case ErrWitnessCountMismatch:
		return "witness count mismatch"
	default:
		return "unknown error"
	}
}

// Error describes why a parse operation failed. It is returned by value from
// every parse function in this package and carries both the ErrorKind (for
// programmatic dispatch) and the byte offset at which the problem was
// detected, mirroring the offset-of-detection requirement in the parsing
// contract.
type Error struct {
	// Func identifies the parse step that detected the failure, e.g.
	// "CompactSize.Parse" or "Transaction.Parse".
	Func string

	// Kind is the closed-set reason for the failure.
	Kind ErrorKind

	// Offset is the byte position at which the failure was detected,
	// counted from the start of the slice handed to the parse step named
	// by Func. Errors are returned unchanged from nested steps, so this is
	// not an offset into the slice passed to the top-level parse call.
	Offset int

	// Needed, when positive, is the number of additional bytes that
	// would have been required to complete the read that failed. It is
	// only populated for ErrUnexpectedEOF.
	Needed int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Needed > 0 {
		return fmt.Sprintf("%s: %s at offset %d (%d more bytes needed)",
			e.Func, e.Kind, e.Offset, e.Needed)
	}
	return fmt.Sprintf("%s: %s at offset %d", e.Func, e.Kind, e.Offset)
}

// Is reports whether target is the same ErrorKind as e, so callers can use
// errors.Is(err, wire.ErrKindNonCanonicalVarInt)-style comparisons against the
// sentinel kinds below.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func newError(funcName string, kind ErrorKind, offset int) *Error {
	return &Error{Func: funcName, Kind: kind, Offset: offset}
}

func newEOFError(funcName string, offset, needed int) *Error {
	return &Error{Func: funcName, Kind: ErrUnexpectedEOF, Offset: offset, Needed: needed}
}

// Sentinel errors of each kind, suitable for errors.Is comparisons (the Is
// method above compares by Kind, not by identity or offset).
var (
	ErrKindUnexpectedEOF        = &Error{Kind: ErrUnexpectedEOF}
	ErrKindNonCanonicalVarInt   = &Error{Kind: ErrNonCanonicalVarInt}
	ErrKindInvalidSegWitFlag    = &Error{Kind: ErrInvalidSegWitFlag}
	ErrKindInvalidSegWitInputs  = &Error{Kind: ErrInvalidSegWitInputs}
	ErrKindTrailingBytes        = &Error{Kind: ErrTrailingBytes}
	ErrKindWitnessCountMismatch = &Error{Kind: ErrWitnessCountMismatch}
)
