// Package state provides the thread-safe store behind the directory view.
//
// # Overview
//
// Store wraps a directory.State and is the only place it changes. Every
// transition goes through Dispatch, which applies directory.Reduce under a
// write lock. Readers call Snapshot and get a copy whose slices they may keep.
//
//	store := state.NewStore()
//	store.Dispatch(loader.Load(ctx))
//	store.Dispatch(directory.SetQuery{Query: "le"})
//	snap := store.Snapshot()
//
// # Liveness
//
// The initial fetch completes asynchronously. When the program shuts down it
// calls Close, after which Dispatch is a no-op returning false. A response that
// arrives after teardown therefore cannot mutate state that nobody renders.
//
// # Concurrency Model
//
//   - Dispatch and Close take the write lock.
//   - Snapshot and Closed take the read lock.
//   - The lock is never held during network I/O or rendering.
package state
