package ops

import (
	"context"

	"github.com/opst/trackboard/pkg/api/types/activitylogs"
	"github.com/opst/trackboard/pkg/dashboard/action"
	"github.com/opst/trackboard/pkg/dashboard/names"
)

func receiveActivityLogs(ls []activitylogs.ActivityLog, count int) action.Action {
	return action.ReceiveActivityLogs(ls, count)
}

// FetchActivityLogs fetches activities of all users.
func FetchActivityLogs(filter ActivityLogFilter) Operation {
	return New("fetch activity logs", func(ctx context.Context, rt Runtime) error {
		return fetchList(
			ctx, rt, "/activitylogs", filter.Values(), false,
			action.RequestActivityLogs(), receiveActivityLogs,
		)
	})
}

// FetchProjectActivityLogs fetches activities in the project, like "alice.mnist".
func FetchProjectActivityLogs(projectName string, filter ActivityLogFilter) Operation {
	return New("fetch activity logs of "+projectName, func(ctx context.Context, rt Runtime) error {
		p, err := names.ParseProject(projectName)
		if err != nil {
			return err
		}
		return fetchList(
			ctx, rt, "/activitylogs"+p.Urlify(), filter.Values(), false,
			action.RequestActivityLogs(), receiveActivityLogs,
		)
	})
}
