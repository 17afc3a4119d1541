// Package storage provides access to the object storage a deployed application can be fetched from.
//
// It wraps the MinIO Go client behind a small interface, which supports both AWS S3 and
// self-hosted MinIO instances. A deployment location of the form s3://bucket/prefix
// selects this package; ParseLocation splits it.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - ListObjects: Lists the application's objects (prefix, recursive).
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	bucket, prefix, ok := storage.ParseLocation("s3://apps/portal")
package storage
