package apperror

const (
	CodeConnectionFailed = "CONNECTION_FAILED"
	CodeQueryFailed      = "QUERY_FAILED"
	CodeNoData           = "NO_DATA"
	CodeExportFailed     = "EXPORT_FAILED"
	CodeInsertFailed     = "INSERT_FAILED"
)
