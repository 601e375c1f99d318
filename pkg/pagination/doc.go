// Package pagination provides batched parallel fetching of catalog records.
//
// Aggregations resolve a list of identifiers to detail records. Fetching
// hundreds of records at once would flood the upstream API, fetching them
// one by one is slow; the batch fetcher splits the keys into fixed-size
// batches, fetches each batch concurrently and runs the batches one after
// another.
//
// Example usage:
//
//	fetcher := pagination.NewBatchFetcher(fetchDetail, pagination.DefaultConfig())
//	details, err := fetcher.FetchAll(ctx, []string{"1", "4", "7"})
//
// The batch fetcher:
//   - Keeps results in key order
//   - Runs at most BatchSize fetches at a time (default 50)
//   - Aborts on the first error and returns no partial data
//   - Logs progress after every batch
package pagination
