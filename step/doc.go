// SPDX-License-Identifier: MIT

// Package step holds the one-position-advance building blocks every range
// algorithm in lvseq is assembled from.
//
// Each primitive performs exactly one logical step: it reads and/or writes
// the addressed values and advances the involved positions by one. Positions
// are passed by pointer and updated in place, mirroring the in/out cursor
// style of the algorithms that drive them.
//
// Atomicity: a primitive validates every capability it needs (readability,
// writability, successor/predecessor existence) before it mutates anything.
// On failure it returns a position.ErrPrecondition sentinel and leaves both
// the positions and the stored values untouched.
//
//	CopyStep                  *dst ← *src; src++, dst++
//	FillStep                  *dst ← x;    dst++
//	ExchangeValues            swap *x, *y; no advance
//	SwapStep                  swap *a, *b; a++, b++
//	ReverseSwapStep           l--; swap *l, *f; f++
//	CopyBackwardStep          li--, lo--; *lo ← *li
//	ReverseCopyStep           li--; *fo ← *li; fo++
//	ReverseCopyBackwardStep   lo--; *lo ← *fi; fi++
//	CountDown                 n-- while n > 0
package step
