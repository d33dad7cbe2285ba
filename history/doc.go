// SPDX-License-Identifier: MIT

// Package history holds validated draws and ordered sequences of them.
//
// What:
//
//   - Draw is a non-empty, ascending, duplicate-free set of grid cells.
//     It can only be built through NewDraw, so every consumer may assume
//     numbers lie in [1,49].
//   - History is an immutable sequence of draws tagged with its Order
//     (NewestFirst or OldestFirst). Accessors At, Recent and Older are always
//     indexed newest-first, whatever the storage order: index 0 is the most
//     recent draw. No consumer ever reverses a slice itself.
//   - ReadJSON / ReadCSV / Load turn archive files into a History, collapsing
//     every accepted draw shape into Draw at this boundary.
//
// Complexity:
//
//   - At, Recent, Older: O(1), views share the underlying array.
//   - NewestFirst, Draws: O(n) copy.
//
// Errors:
//
//   - ErrEmptyDraw, ErrDuplicateNumber, ErrOutOfRange: rejected draws.
//   - ErrUnknownOrder: Order value or name not recognised.
//   - ErrIndexOutOfRange: At called outside [0,Len).
//   - ErrUnsupportedFormat: Load called on an unknown file extension.
//   - ErrMalformedRecord: an archive entry could not be decoded.
package history
