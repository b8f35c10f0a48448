package bloom

// Options configures a Filter at construction. The zero value selects the
// SplitMixKernel.
type Options struct {
	kernel HashKernel
}

type Option func(*Options)

// WithHashKernel selects the base hash source. The kernel is fixed for the
// lifetime of the filter: inserting with one kernel and querying with
// another gives meaningless answers.
func WithHashKernel(kernel HashKernel) Option {
	return func(opts *Options) {
		opts.kernel = kernel
	}
}

func newOptions(opts ...Option) Options {
	var options Options
	for _, o := range opts {
		o(&options)
	}
	if options.kernel == nil {
		options.kernel = SplitMixKernel{}
	}
	return options
}
