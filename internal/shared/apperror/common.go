package apperror

var (
	ErrNoData = New(
		CodeNoData,
		"No employee data available",
	)

	ErrConnectionFailed = New(
		CodeConnectionFailed,
		"Could not connect to the database",
	)
)
