package outcome

// CollectResult applies f to items in order, gathering the successes. The
// first failure is returned as-is and no later item is processed.
func CollectResult[T, A any](items []T, f func(item T) Result[A]) Result[[]A] {
	vals := make([]A, 0, len(items))
	for _, item := range items {
		r := f(item)
		if r.IsErr() {
			return ErrFrom[A, []A](r)
		}
		vals = append(vals, r.val)
	}
	return Ok(vals)
}

// TransposeResult flips a slice of results into a result of a slice,
// short-circuiting on the first failure.
func TransposeResult[A any](items []Result[A]) Result[[]A] {
	return CollectResult(items, func(r Result[A]) Result[A] { return r })
}

// PartitionResults splits results into successes and failures. Every item
// is inspected; both slices keep the input order.
func PartitionResults[A any](items []Result[A]) ([]A, []error) {
	vals := make([]A, 0, len(items))
	errs := make([]error, 0)
	for _, r := range items {
		if r.isOk {
			vals = append(vals, r.val)
		} else {
			errs = append(errs, r.err)
		}
	}
	return vals, errs
}
