package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/taskdesk/internal/client/router"
	"github.com/dmitrijs2005/taskdesk/internal/client/services"
	"github.com/dmitrijs2005/taskdesk/internal/client/validation"
	"github.com/dmitrijs2005/taskdesk/internal/common"
)

// notice is an error that only carries a message for the user.
type notice string

func (n notice) Error() string { return string(n) }

const gatewayNotice = "The task store did not answer as expected. Please try again."

// describeError returns the lines shown for err. A nil slice means the error
// is handled without a message.
func describeError(err error) []string {
	var (
		n    notice
		verr *validation.Error
	)
	switch {
	case errors.Is(err, common.ErrNoSession):
		return nil
	case errors.As(err, &n):
		return []string{string(n)}
	case errors.As(err, &verr):
		keys := make([]string, 0, len(verr.Fields))
		for k := range verr.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		lines := []string{"Please correct the following:"}
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("  - %s %s", k, verr.Fields[k]))
		}
		return lines
	case errors.Is(err, common.ErrInFlight):
		return []string{"Please wait for the previous request to finish."}
	case errors.Is(err, services.ErrInvalidCredentials):
		return []string{"Invalid email or password."}
	case errors.Is(err, common.ErrGateway):
		return []string{gatewayNotice}
	default:
		return []string{fmt.Sprintf("Error: %v", err)}
	}
}

// report shows err to the user. A lost session sends the user to the login
// page instead.
func (a *App) report(ctx context.Context, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, common.ErrNoSession) {
		a.log.Info(ctx, "session expired, redirecting to login")
		a.user = nil
		if err := a.openPage(ctx, router.Login); err != nil {
			a.log.Error(ctx, "open login page", "error", err)
		}
		return
	}

	switch {
	case errors.Is(err, common.ErrGateway):
		a.log.Error(ctx, "request failed", "page", a.router.Current(), "error", err)
	default:
		a.log.Debug(ctx, "command failed", "error", err)
	}
	for _, line := range describeError(err) {
		fmt.Fprintln(a.out, line)
	}
}
