// Package api emulates the portal's remote backend: every operation
// waits out a configured delay, performs one store operation, and
// answers with a success/error envelope. Expected domain failures (bad
// credentials, unknown id) live inside the envelope; a non-nil Go error
// means something genuinely unexpected happened in the store.
package api

// Response is the uniform envelope every operation returns. Callers
// must check Success before trusting Data.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
}

func ok[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data}
}

func fail[T any](msg string) Response[T] {
	return Response[T]{Error: msg}
}
