package session

import (
	"fmt"

	"github.com/datapos-io/csvstream/errs"
	"github.com/datapos-io/csvstream/internal/options"
)

type config struct {
	recordSize  int
	endsSize    int
	filterEmpty bool
}

// Option configures a Session at construction time.
type Option = options.Option[*config]

// WithRecordScratchSize sets the initial capacity of the record scratch
// buffer. The buffer still grows on demand; a larger initial size avoids
// growth retries when typical records are known to be wide.
func WithRecordScratchSize(n int) Option {
	return options.New(func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: record scratch size %d", errs.ErrInvalidOption, n)
		}
		c.recordSize = n

		return nil
	})
}

// WithFieldCapacity sets the initial capacity of the field-end offset buffer.
func WithFieldCapacity(n int) Option {
	return options.New(func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: field capacity %d", errs.ErrInvalidOption, n)
		}
		c.endsSize = n

		return nil
	})
}

// WithEmptyRowFiltering controls whether rows whose fields are all empty or
// whitespace-only are discarded. Enabled by default.
func WithEmptyRowFiltering(enabled bool) Option {
	return options.New(func(c *config) error {
		c.filterEmpty = enabled

		return nil
	})
}
