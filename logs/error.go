package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan annotates err with the span and machine recorded in ctx.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	errs := []error{err}
	if v := ctx.Value(SpanKey); v != nil {
		errs = append(errs, fmt.Errorf("span: %s", v.(Span)))
	}
	if i, ok := machineFromContext(ctx); ok {
		errs = append(errs, fmt.Errorf("machine: %d", i))
	}
	if len(errs) == 1 {
		return err
	}
	return errors.Join(errs...)
}
