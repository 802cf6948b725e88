package domain

// ResultState tags the three phases every network-backed operation reports.
type ResultState int

const (
	ResultLoading ResultState = iota
	ResultSuccess
	ResultError
)

// Result is the uniform progress wrapper: Loading first, then exactly one
// of Success (Data set) or Error (Message set).
type Result[T any] struct {
	State   ResultState
	Data    T
	Message string
}

func Loading[T any]() Result[T] {
	return Result[T]{State: ResultLoading}
}

func Success[T any](data T) Result[T] {
	return Result[T]{State: ResultSuccess, Data: data}
}

func Failure[T any](message string) Result[T] {
	return Result[T]{State: ResultError, Message: message}
}
