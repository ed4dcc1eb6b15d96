package parse

type parseOpts struct {
	config    *Config
	rename    func(string) string
	renameSet bool
}

type ParseOption func(*parseOpts)

// WithConfig sets the conversion settings.  Without it DefaultConfig is used.
func WithConfig(c *Config) ParseOption {
	return func(o *parseOpts) { o.config = c }
}

// RenameKeys applies fn to every key of the converted tree as it is built.
func RenameKeys(fn func(string) string) ParseOption {
	return func(o *parseOpts) {
		o.rename = fn
		o.renameSet = true
	}
}

func getOpts(opts []ParseOption) *parseOpts {
	res := &parseOpts{}
	for _, f := range opts {
		f(res)
	}
	if res.config == nil {
		res.config = DefaultConfig()
	}
	return res
}
