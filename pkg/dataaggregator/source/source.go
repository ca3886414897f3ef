package source

import "errors"

// UnsupportedSourceError is returned by a source that matched on type but
// cannot actually serve the given query, letting the aggregator try the
// next registered source.
var UnsupportedSourceError = errors.New("unsupported source for this query")
