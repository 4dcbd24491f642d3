/* Copyright (c) 2013 The s3cache AUTHORS. All rights reserved.
 * Copyright (c) 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 *
 * Package s3cache provides an httpcache.Cache stored in Amazon S3. kyutd uses
 * it to keep fetched rosters around between runs so a registration page that
 * goes down on tournament morning does not stop the pairings. It is based on
 * github.com/sourcegraph/s3cache, ported to aws-sdk-go-v2.
 */
package s3cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const DefaultPrefix = "s3cache"

// ObjectStore is the subset of *s3.Client the cache needs.
type ObjectStore interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput,
		optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput,
		optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput,
		optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Options configures a Cache.
type Options struct {
	// Bucket is the S3 bucket name, e.g. "mybucket".
	Bucket string
	// Prefix is prepended to every object key. Defaults to DefaultPrefix.
	Prefix string
	// Gzip compresses entries on Set and decompresses them on Get. Object
	// keys get a ".gz" suffix.
	Gzip bool
	// LogErrors logs failed S3 operations. Missing keys are never logged.
	LogErrors bool
}

// Cache stores and retrieves httpcache entries using Amazon S3.
type Cache struct {
	store ObjectStore
	opts  Options

	// context used for every s3 request
	ctx context.Context
}

// New returns a Cache backed by the given store.
func New(ctx context.Context, store ObjectStore, opts Options) *Cache {
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	return &Cache{
		store: store,
		opts:  opts,
		ctx:   ctx,
	}
}

// Open loads the default AWS configuration (environment, shared config and
// credentials files), verifies that opts.Bucket can be read and listed, and
// returns a Cache using it.
func Open(ctx context.Context, opts Options) (*Cache, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3cache.open: failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg)

	if _, err = client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(opts.Bucket),
	}); err != nil {
		return nil, fmt.Errorf("s3cache.open: head bucket failed for %s: %w",
			opts.Bucket, err)
	}
	if _, err = client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(opts.Bucket),
		MaxKeys: aws.Int32(1),
	}); err != nil {
		return nil, fmt.Errorf("s3cache.open: list objects failed for %s: %w",
			opts.Bucket, err)
	}

	return New(ctx, client, opts), nil
}

func (c *Cache) Get(key string) ([]byte, bool) {
	objKey := c.objectKey(key)
	resp, err := c.store.GetObject(c.ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.opts.Bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		if !isNoSuchKey(err) {
			c.logf("s3cache.get: failed to get object %v%v: %v", c.opts.Bucket,
				objKey, err)
		}
		return nil, false
	}
	defer resp.Body.Close()

	rdr := io.Reader(resp.Body)
	if c.opts.Gzip {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			c.logf("s3cache.get: failed to open compressed object %v%v: %v",
				c.opts.Bucket, objKey, err)
			return nil, false
		}
		defer gz.Close()
		rdr = gz
	}

	data, err := io.ReadAll(rdr)
	if err != nil {
		c.logf("s3cache.get: failed to read object %v%v: %v", c.opts.Bucket,
			objKey, err)
		return nil, false
	}

	return data, true
}

// Set stores data under key. Failures are logged (if enabled) and dropped.
func (c *Cache) Set(key string, data []byte) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.opts.Bucket),
		Key:    aws.String(c.objectKey(key)),
		Body:   bytes.NewReader(data),
	}

	if c.opts.Gzip {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(data); err != nil {
			c.logf("s3cache.set: failed to gzip data for %v%v: %v",
				c.opts.Bucket, *input.Key, err)
			return
		}
		if err := gw.Close(); err != nil {
			c.logf("s3cache.set: failed to close gzip writer for %v%v: %v",
				c.opts.Bucket, *input.Key, err)
			return
		}
		input.Body = bytes.NewReader(buf.Bytes())
		input.ContentEncoding = aws.String("gzip")
	}

	if _, err := c.store.PutObject(c.ctx, input); err != nil {
		c.logf("s3cache.set: put failed for %v%v: %v", c.opts.Bucket,
			*input.Key, err)
	}
}

func (c *Cache) Delete(key string) {
	_, err := c.store.DeleteObject(c.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.opts.Bucket),
		Key:    aws.String(c.objectKey(key)),
	})
	if err != nil {
		c.logf("s3cache.delete: delete failed: %v", err)
	}
}

// objectKey maps an httpcache key (a URL) to "<prefix>/<md5 hex>[.gz]".
func (c *Cache) objectKey(key string) string {
	sum := md5.Sum([]byte(key))
	objKey := path.Join(c.opts.Prefix, hex.EncodeToString(sum[:]))
	if c.opts.Gzip {
		objKey += ".gz"
	}

	return objKey
}

func (c *Cache) logf(format string, args ...any) {
	if c.opts.LogErrors {
		log.Printf(format, args...)
	}
}

func isNoSuchKey(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey"
}
