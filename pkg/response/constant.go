package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Internal server error"

	BadRequestErrorCode     = 400
	InternalServerErrorCode = 500
)
