package logs

import "context"

// Span identifies one scheduler run or driver session in logs and errors.
type Span string

type spanKey struct{}

var SpanKey = spanKey{}

type machineKey struct{}

// WithMachine tags ctx with the index of the machine being serviced.
func WithMachine(ctx context.Context, index int) context.Context {
	return context.WithValue(ctx, machineKey{}, index)
}

func machineFromContext(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(machineKey{}).(int)
	return v, ok
}
