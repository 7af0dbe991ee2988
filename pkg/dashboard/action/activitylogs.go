package action

import "github.com/opst/trackboard/pkg/api/types/activitylogs"

func RequestActivityLogs() Requested {
	return Requested{Entity: ActivityLog, Many: true}
}

func ReceiveActivityLogs(logs []activitylogs.ActivityLog, count int) ReceivedMany[activitylogs.ActivityLog] {
	return ReceivedMany[activitylogs.ActivityLog]{Entity: ActivityLog, Items: logs, Count: count}
}
