package sqlclient

// Option tunes a single Execute or ExecuteMany call.
type Option func(*options)

type options struct {
	autocommit bool
	mappings   bool
}

// Autocommit runs the statement outside an explicit transaction.
func Autocommit() Option {
	return func(o *options) {
		o.autocommit = true
	}
}

// AsMappings selects whether Execute fills Result.Rows (true, default) or Result.Tuples.
func AsMappings(enabled bool) Option {
	return func(o *options) {
		o.mappings = enabled
	}
}

func splitOptions(opts []Option) options {
	res := options{mappings: true}

	for _, opt := range opts {
		opt(&res)
	}

	return res
}
