// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blob reads and writes whole files, either on the local disk or
// in Google Cloud Storage.
//
// A location of the form gs://bucket/object denotes a GCS object.
// Any other location is interpreted as a filename.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"golang.org/x/huffpack/internal/derrors"
	"golang.org/x/huffpack/internal/log"
)

const gcsScheme = "gs://"

// IsGCS reports whether location denotes a GCS object.
func IsGCS(location string) bool {
	return strings.HasPrefix(location, gcsScheme)
}

// ParseGCS splits a location of the form gs://bucket/object.
func ParseGCS(location string) (bucket, object string, err error) {
	if !IsGCS(location) {
		return "", "", fmt.Errorf("%q is not a GCS URL: %w", location, derrors.InvalidArgument)
	}
	bucket, object, found := strings.Cut(location[len(gcsScheme):], "/")
	if !found || bucket == "" || object == "" {
		return "", "", fmt.Errorf("bad GCS URL %q: %w", location, derrors.InvalidArgument)
	}
	return bucket, object, nil
}

// Read returns the contents of location.
func Read(ctx context.Context, location string) (_ []byte, err error) {
	defer derrors.Wrap(&err, "blob.Read(%q)", location)

	log.Debugf(ctx, "reading %s", location)
	var r io.ReadCloser
	if IsGCS(location) {
		bucket, object, err := ParseGCS(location)
		if err != nil {
			return nil, err
		}
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		defer client.Close()
		r, err = client.Bucket(bucket).Object(object).NewReader(ctx)
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("%v: %w", err, derrors.NotFound)
		}
		if err != nil {
			return nil, err
		}
	} else {
		r, err = os.Open(location)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%v: %w", err, derrors.NotFound)
		}
		if err != nil {
			return nil, err
		}
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Write replaces the contents of location with data.
func Write(ctx context.Context, location string, data []byte) (err error) {
	defer derrors.Wrap(&err, "blob.Write(%q, %d bytes)", location, len(data))

	log.Debugf(ctx, "writing %s", location)
	var w io.WriteCloser
	if IsGCS(location) {
		bucket, object, err := ParseGCS(location)
		if err != nil {
			return err
		}
		client, err := storage.NewClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()
		w = client.Bucket(bucket).Object(object).NewWriter(ctx)
	} else {
		w, err = os.Create(location)
		if err != nil {
			return err
		}
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	// For GCS, the object is only committed by a successful Close.
	return w.Close()
}
