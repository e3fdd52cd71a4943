package response

const (
	// DefaultErrorMessage is returned for unexpected server-side failures.
	DefaultErrorMessage = "Something went wrong"
)
