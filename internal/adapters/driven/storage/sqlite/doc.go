// Package sqlite implements the durable key-value storage boundary on
// SQLite. The file lives in the dailybrief data directory and uses WAL
// mode so concurrent same-device processes serialise on writes
// (last-writer-wins; no cross-process coordination beyond that).
package sqlite
