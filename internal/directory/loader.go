package directory

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/users"
)

const unknownErrorMessage = "an unknown error occurred"

// Loader performs the single initial fetch of the user list.
type Loader struct {
	fetcher users.Fetcher
	logger  *slog.Logger

	once   sync.Once
	result Action
}

// NewLoader wraps fetcher. A nil logger discards output.
func NewLoader(fetcher users.Fetcher, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Loader{fetcher: fetcher, logger: logger}
}

// Load fetches the users and converts the outcome into LoadSucceeded or
// LoadFailed. The fetch runs at most once per Loader; later calls return the
// first result.
func (l *Loader) Load(ctx context.Context) Action {
	l.once.Do(func() {
		l.result = l.load(ctx)
	})
	return l.result
}

func (l *Loader) load(ctx context.Context) Action {
	if l.fetcher == nil {
		return LoadFailed{Message: "no user source configured"}
	}
	started := time.Now()
	list, err := l.fetcher.FetchUsers(ctx)
	if err != nil {
		msg := FailureMessage(err)
		l.logger.Error("load users failed", "error", err, "elapsed", time.Since(started))
		return LoadFailed{Message: msg}
	}
	if len(list) == 0 {
		l.logger.Warn("load users returned no records")
		return LoadFailed{Message: users.ErrEmptyList.Error()}
	}
	l.logger.Info("users loaded", "count", len(list), "elapsed", time.Since(started))
	return LoadSucceeded{Users: list}
}

// FailureMessage maps a fetch error to the text shown in the failed view.
func FailureMessage(err error) string {
	if err == nil {
		return unknownErrorMessage
	}
	if errors.Is(err, users.ErrEmptyList) {
		return users.ErrEmptyList.Error()
	}
	var statusErr *users.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return unknownErrorMessage
	}
	return msg
}
