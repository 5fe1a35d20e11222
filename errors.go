package plycloud

import (
	"errors"
	"fmt"
)

var (
	// ErrNilCloud is returned when Save is called without a point cloud.
	ErrNilCloud = errors.New("plycloud: nil point cloud")
	// ErrEmptyCloud is returned when Save is called on a cloud without vertices.
	ErrEmptyCloud = errors.New("plycloud: empty point cloud")
)

// DecodeError indicates that the codec could not read a file.
//
// The codec error can be accessed via errors.Unwrap.
type DecodeError struct {
	Path  string
	cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("plycloud: read %q: %v", e.Path, e.cause)
}

func (e *DecodeError) Unwrap() error { return e.cause }

// EncodeError indicates that the codec could not write a file.
//
// The codec error can be accessed via errors.Unwrap.
type EncodeError struct {
	Path  string
	cause error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("plycloud: write %q: %v", e.Path, e.cause)
}

func (e *EncodeError) Unwrap() error { return e.cause }

// InstallError indicates that a property could not be installed into the
// point cloud, typically because the name is already taken by a property
// of another type (pointcloud.ErrTypeMismatch).
type InstallError struct {
	Property string
	cause    error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("plycloud: install property %q: %v", e.Property, e.cause)
}

func (e *InstallError) Unwrap() error { return e.cause }
