package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/roster/internal/users"
)

func sampleUsers() []users.User {
	return []users.User{
		{ID: 1, Name: "Leanne Graham", Email: "a@b.com", Address: users.Address{City: "Gwenborough"}},
		{ID: 2, Name: "Ervin Howell", Email: "shanna@melissa.tv", Address: users.Address{City: "Wisokyburgh"}},
		{ID: 3, Name: "Clementine Bauch", Email: "nathan@yesenia.net"},
		{ID: 4, Name: "leopoldo Corkery", Email: "lc@example.com", Address: users.Address{City: "Roscoeview"}},
	}
}

func loaded(t *testing.T) State {
	t.Helper()
	s := Reduce(Initial(), LoadSucceeded{Users: sampleUsers()})
	require.Equal(t, PhaseLoaded, s.Phase)
	return s
}

func ids(list []users.User) []int64 {
	out := make([]int64, 0, len(list))
	for _, u := range list {
		out = append(out, u.ID)
	}
	return out
}

func TestFilterUsers_PrefixCaseInsensitive(t *testing.T) {
	list := sampleUsers()
	tests := []struct {
		query string
		want  []int64
	}{
		{"", []int64{1, 2, 3, 4}},
		{"   ", []int64{1, 2, 3, 4}},
		{"le", []int64{1, 4}},
		{"  LE ", []int64{1, 4}},
		{"leanne", []int64{1}},
		{"graham", []int64{}},
		{"xyz", []int64{}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.query), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterUsers(list, tt.query)))
		})
	}
}

func TestFilterUsers_EveryMatchHasPrefix(t *testing.T) {
	list := sampleUsers()
	for _, q := range []string{"l", "Le", "E", "cl", "leo", "z"} {
		norm := NormalizeQuery(q)
		for _, u := range FilterUsers(list, q) {
			assert.True(t, strings.HasPrefix(strings.ToLower(u.Name), norm), "%q does not start with %q", u.Name, norm)
		}
	}
}

func TestFilterUsers_DoesNotMutateList(t *testing.T) {
	list := sampleUsers()
	_ = FilterUsers(list, "e")
	assert.Equal(t, sampleUsers(), list)
}

func TestReduce_InitialIsLoading(t *testing.T) {
	s := Initial()
	assert.Equal(t, PhaseLoading, s.Phase)
	assert.Equal(t, "loading", s.Phase.String())
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestReduce_LoadSucceededPopulatesView(t *testing.T) {
	s := loaded(t)
	assert.Equal(t, ids(sampleUsers()), ids(s.Users))
	assert.Equal(t, ids(sampleUsers()), ids(s.Filtered))
	assert.Empty(t, s.Message)
}

func TestReduce_LoadSucceededWithEmptyListFails(t *testing.T) {
	s := Reduce(Initial(), LoadSucceeded{})
	assert.Equal(t, PhaseFailed, s.Phase)
	assert.Equal(t, users.ErrEmptyList.Error(), s.Message)
	assert.Empty(t, s.Users)
}

func TestReduce_LoadFailed(t *testing.T) {
	s := Reduce(Initial(), LoadFailed{Message: "HTTP error: status 500 - boom"})
	assert.Equal(t, PhaseFailed, s.Phase)
	assert.Equal(t, "failed", s.Phase.String())
	assert.Contains(t, s.Message, "500")

	s = Reduce(Initial(), LoadFailed{})
	assert.Equal(t, unknownErrorMessage, s.Message)
}

func TestReduce_PhaseNeverReverts(t *testing.T) {
	s := loaded(t)
	s = Reduce(s, LoadFailed{Message: "late"})
	assert.Equal(t, PhaseLoaded, s.Phase)
	assert.Empty(t, s.Message)

	failed := Reduce(Initial(), LoadFailed{Message: "down"})
	failed = Reduce(failed, LoadSucceeded{Users: sampleUsers()})
	assert.Equal(t, PhaseFailed, failed.Phase)
	assert.Empty(t, failed.Users)

	again := Reduce(s, LoadSucceeded{Users: sampleUsers()[:1]})
	assert.Len(t, again.Users, 4)
}

func TestReduce_QueryIsInertUntilLoaded(t *testing.T) {
	s := Reduce(Initial(), SetQuery{Query: "le"})
	assert.Equal(t, "le", s.Query)
	assert.Nil(t, s.Filtered)

	s = Reduce(s, LoadSucceeded{Users: sampleUsers()})
	assert.Equal(t, []int64{1, 4}, ids(s.Filtered))

	failed := Reduce(Reduce(Initial(), LoadFailed{Message: "x"}), SetQuery{Query: "e"})
	assert.Nil(t, failed.Filtered)
}

func TestReduce_EmptyQueryRestoresListAndClearsSelection(t *testing.T) {
	s := loaded(t)
	s = Reduce(s, SetQuery{Query: "er"})
	s = Reduce(s, Activate{ID: 2})
	require.True(t, s.IsSelected(2))

	s = Reduce(s, SetQuery{Query: " "})
	assert.Equal(t, ids(s.Users), ids(s.Filtered))
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestReduce_NonEmptyQueryKeepsSelection(t *testing.T) {
	s := loaded(t)
	s = Reduce(s, SetQuery{Query: "c"})
	s = Reduce(s, Activate{ID: 3})
	s = Reduce(s, SetQuery{Query: "le"})
	assert.True(t, s.IsSelected(3))
}

func TestReduce_ConfirmSelectsFirstFiltered(t *testing.T) {
	s := loaded(t)
	s = Reduce(s, SetQuery{Query: "le"})
	s = Reduce(s, Confirm{})

	u, ok := s.Selected()
	require.True(t, ok)
	assert.EqualValues(t, 1, u.ID)
	assert.Equal(t, "a@b.com", u.Email)
	assert.Equal(t, "Gwenborough", u.City())
}

func TestReduce_ConfirmWithNoMatchesClears(t *testing.T) {
	s := loaded(t)
	s = Reduce(s, SetQuery{Query: "e"})
	s = Reduce(s, Activate{ID: 2})
	s = Reduce(s, SetQuery{Query: "xyz"})
	require.True(t, s.ShowNoResults())

	s = Reduce(s, Confirm{})
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestReduce_ConfirmWithEmptyQuerySelectsFirstUser(t *testing.T) {
	s := Reduce(loaded(t), Confirm{})
	assert.True(t, s.IsSelected(1))
}

func TestReduce_ActivateUnknownIDIsNoop(t *testing.T) {
	s := loaded(t)
	s = Reduce(s, Activate{ID: 99})
	_, ok := s.Selected()
	assert.False(t, ok)

	s = Reduce(s, Activate{ID: 4})
	s = Reduce(s, Activate{ID: 99})
	assert.True(t, s.IsSelected(4))
}

func TestReduce_SelectionIgnoredBeforeLoad(t *testing.T) {
	s := Reduce(Initial(), Activate{ID: 1})
	s = Reduce(s, Confirm{})
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestReduce_ClearSelection(t *testing.T) {
	s := Reduce(loaded(t), Activate{ID: 1})
	s = Reduce(s, ClearSelection{})
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestReduce_SelectionNeverTouchesLists(t *testing.T) {
	s := Reduce(loaded(t), SetQuery{Query: "le"})
	before := ids(s.Filtered)
	s = Reduce(s, Activate{ID: 2})
	s = Reduce(s, Confirm{})
	assert.Equal(t, before, ids(s.Filtered))
	assert.Len(t, s.Users, 4)
}

func TestState_ShowNoResults(t *testing.T) {
	s := loaded(t)
	assert.False(t, s.ShowNoResults())
	s = Reduce(s, SetQuery{Query: "xyz"})
	assert.True(t, s.ShowNoResults())
	s = Reduce(s, SetQuery{Query: "leanne"})
	assert.False(t, s.ShowNoResults())
}

type fakeFetcher struct {
	calls atomic.Int32
	list  []users.User
	err   error
}

func (f *fakeFetcher) FetchUsers(context.Context) ([]users.User, error) {
	f.calls.Add(1)
	return f.list, f.err
}

func TestLoader_SuccessRunsOnce(t *testing.T) {
	f := &fakeFetcher{list: sampleUsers()}
	l := NewLoader(f, nil)

	first := l.Load(context.Background())
	second := l.Load(context.Background())

	require.IsType(t, LoadSucceeded{}, first)
	assert.Len(t, first.(LoadSucceeded).Users, 4)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, f.calls.Load())
}

func TestLoader_FailureMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		list []users.User
		want string
	}{
		{"status", &users.StatusError{Code: 500, Body: "boom"}, nil, "HTTP error: status 500 - boom"},
		{"wrapped status", fmt.Errorf("fetch: %w", &users.StatusError{Code: 503}), nil, "HTTP error: status 503"},
		{"empty payload", fmt.Errorf("%w: eof", users.ErrEmptyList), nil, users.ErrEmptyList.Error()},
		{"empty list without error", nil, []users.User{}, users.ErrEmptyList.Error()},
		{"transport", errors.New("execute request: dial tcp: connection refused"), nil, "execute request: dial tcp: connection refused"},
		{"blank error", errors.New("  "), nil, unknownErrorMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoader(&fakeFetcher{list: tt.list, err: tt.err}, nil)
			got := l.Load(context.Background())
			require.IsType(t, LoadFailed{}, got)
			assert.Equal(t, tt.want, got.(LoadFailed).Message)
		})
	}
}

func TestLoader_NilFetcher(t *testing.T) {
	got := NewLoader(nil, nil).Load(context.Background())
	require.IsType(t, LoadFailed{}, got)
}

func TestFailureMessage_Nil(t *testing.T) {
	assert.Equal(t, unknownErrorMessage, FailureMessage(nil))
}
