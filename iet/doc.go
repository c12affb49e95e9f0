// Package iet implements the interval exchange transformation kernel:
// accelerated Zorich induction, reducibility detection, the SAF invariant,
// the Boshernitzan criterion, and the auto-similarity loop tracker used when
// SAF vanishes.
//
// An IET owns two index-based doubly-linked lists of intervals (top and
// bottom), sharing one arena so that splitting an IET via Reduce needs no
// node copies: the two halves simply point at disjoint runs of the same
// backing slice. Indices into a shared slice rather than a pointer-chased
// tree keep the Dehn-twist splice in zorichStep O(1) regardless of how many
// intervals are involved.
package iet
