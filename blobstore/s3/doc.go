// Package s3 provides an Amazon S3 implementation of blobstore.BlobStore.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil { ... }
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "scans/")
//
//	codec := ply.NewCodec(store)
//	io := plycloud.New(plycloud.WithCodec(codec))
//
// # Features
//
//   - Range reads for partial fetches
//   - Multipart uploads for large clouds (feature/s3/manager)
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
