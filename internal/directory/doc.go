// Package directory holds the user directory's state machine.
//
// # Overview
//
// State is a plain value describing everything the view needs: the load
// phase, the authoritative user list, the search query, the filtered view
// and the optional selection. Reduce is the only way to change it:
//
//	s := directory.Initial()
//	s = directory.Reduce(s, loader.Load(ctx))
//	s = directory.Reduce(s, directory.SetQuery{Query: "le"})
//	s = directory.Reduce(s, directory.Confirm{})
//	u, ok := s.Selected()
//
// # Filtering
//
// FilterUsers is a pure function. Queries are lowercased and trimmed, then
// matched as a prefix of the lowercased name. An empty query yields the full
// list and clears the selection. The filter is inert until the load succeeds.
//
// # Loading
//
// Loader wraps a users.Fetcher and runs it once. Every failure (transport,
// non-2xx, empty or malformed payload) collapses into LoadFailed with a
// message from FailureMessage. The phase leaves PhaseLoading exactly once.
package directory
