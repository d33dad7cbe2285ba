// SPDX-License-Identifier: MIT

package history

import "errors"

// Sentinel errors for history construction and ingestion.
var (
	// ErrEmptyDraw indicates a draw with no numbers.
	ErrEmptyDraw = errors.New("history: draw has no numbers")
	// ErrDuplicateNumber indicates a number repeated within one draw.
	ErrDuplicateNumber = errors.New("history: duplicate number in draw")
	// ErrOutOfRange indicates a number outside [1,49].
	ErrOutOfRange = errors.New("history: number out of range [1,49]")
	// ErrUnknownOrder indicates an unrecognised chronological order.
	ErrUnknownOrder = errors.New("history: unknown order")
	// ErrUnknownPolicy indicates an unrecognised ingestion policy name.
	ErrUnknownPolicy = errors.New("history: unknown policy")
	// ErrIndexOutOfRange indicates At was called with an invalid index.
	ErrIndexOutOfRange = errors.New("history: index out of range")
	// ErrUnsupportedFormat indicates an archive file type Load cannot read.
	ErrUnsupportedFormat = errors.New("history: unsupported archive format")
	// ErrMalformedRecord indicates an archive entry that could not be decoded.
	ErrMalformedRecord = errors.New("history: malformed record")
)
