// Package dataset turns time series of simulation or measurement output
// into the dense snapshot matrices the decomposition packages consume.
//
// The Dataloader interface is the producer contract: discover the
// available write times and field names, then assemble a matrix whose
// rows are spatial points and whose columns are the requested time
// levels. CSVLoader implements it for directories of per-snapshot CSV
// files whose names encode the write time:
//
//	loader, err := dataset.NewCSVLoader("run/", dataset.WithPrefix("flow_"))
//	times := loader.WriteTimes()             // ["0.0", "0.1", ...]
//	p, err := loader.LoadSnapshot("p", times)
//	h, err := hodmd.New(p, 0.1)
//
// Accessors a loader cannot serve return ErrNotImplemented and are never
// silently substituted with defaults; callers must handle or propagate
// the failure.
package dataset
