package proxy

// Results holds the values returned by a forwarded operation, in the order
// the underlying method declares them.
type Results []any

// Len returns the number of results.
func (r Results) Len() int {
	return len(r)
}

// First returns the first result, or nil if there are none.
func (r Results) First() any {
	if len(r) == 0 {
		return nil
	}
	return r[0]
}

// Err returns the last result if it is a non-nil error. By convention this
// is the error returned by the forwarded method.
func (r Results) Err() error {
	if len(r) == 0 {
		return nil
	}
	err, _ := r[len(r)-1].(error)
	return err
}
