// Package ply implements the PLY polygon file format codec.
//
// Decode parses a PLY stream (ASCII, binary little endian or binary big
// endian) into the generic element model; Encode writes elements back.
//
// # Buckets
//
// Decoded properties are sorted into the element's type buckets:
//
//   - integer scalars (char, uchar, short, ushort, int, uint) → IntProperties
//   - float scalars (float, double) → FloatProperties
//   - integer lists → IntListProperties
//   - float lists → FloatListProperties
//
// Float triples are grouped into Vec3Properties:
//
//	x y z              → point
//	nx ny nz           → normal
//	red green blue     → color (integer channels are scaled to [0, 1])
//	r g b              → color
//	<name>_x _y _z     → <name>
//
// Encode applies the inverse mapping, so Vec3 properties and scalars with
// other names survive Encode followed by Decode unchanged. Scalars that
// Encode writes under component names do not: float x, y and z come back
// as Vec3 point, and integer red, green and blue as a Vec3 color scaled
// to [0, 1]. Names are the only grouping information a PLY header holds.
//
// # Storage
//
// Codec reads and writes files through a blobstore.BlobStore and
// compresses transparently by file extension (.gz, .zst, .lz4):
//
//	codec := ply.NewCodec(blobstore.NewLocalStore(""))
//	elements, err := codec.Read(ctx, "scans/room.ply.zst")
package ply
