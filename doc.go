// Package plycloud loads point clouds from PLY files and saves them back.
//
// A PLY file is a set of named elements, each a table of typed properties.
// plycloud maps the "vertex" element onto the vertex properties of a
// pointcloud.Cloud and back:
//
//   - Load installs every vertex property under its name prefixed with
//     the "v:" marker ("x y z" becomes "v:point", "quality" becomes
//     "v:quality"). Edge, face and other elements are reported to the
//     Observer and skipped.
//   - Save packs all vertex properties into one "vertex" element, strips
//     the marker and hands it to the codec.
//
// # Quick Start
//
//	ctx := context.Background()
//	cloud := pointcloud.New()
//	if err := plycloud.Load(ctx, "bunny.ply", cloud); err != nil {
//	    log.Fatal(err)
//	}
//	normals, ok := pointcloud.GetVertexProperty[element.Vec3](cloud, "v:normal")
//
//	if err := plycloud.Save(ctx, "bunny-copy.ply", cloud, true); err != nil {
//	    log.Fatal(err)
//	}
//
// # Storage
//
// The default codec reads and writes local files. Use ply.NewCodec with a
// blobstore.BlobStore to read from S3 or MinIO, and name files ".ply.gz",
// ".ply.zst" or ".ply.lz4" to compress them:
//
//	store := s3.NewStore(client, "scans", "2024/")
//	pio := plycloud.New(plycloud.WithCodec(ply.NewCodec(store)))
//	err := pio.Save(ctx, "room.ply.zst", cloud, true)
//
// # Diagnostics
//
// Advisory diagnostics go to an Observer; the default logs them through
// the Logger at WARN (skipped elements) and DEBUG (ASCII writes). Failures
// are returned as errors: *DecodeError, *EncodeError, *InstallError,
// ErrNilCloud and ErrEmptyCloud.
package plycloud
