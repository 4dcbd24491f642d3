/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package publish uploads rendered brackets to S3 so they can be shared
// with the venue and the competitors' clubs.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/mikeb26/kyutd/internal"
	"golang.org/x/sync/errgroup"
)

const undated = "undated"

// ObjectPutter is the subset of *s3.Client the uploader needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput,
		optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Artifact is one rendered file.
type Artifact struct {
	Name        string
	ContentType string
	Body        []byte
}

// Result lists where a run's artifacts were stored.
type Result struct {
	RunID string
	// Keys holds one object key per artifact, in artifact order.
	Keys []string
}

// URIs returns s3:// locations for r.Keys.
func (r *Result) URIs(bucket string) []string {
	out := make([]string, len(r.Keys))
	for i, k := range r.Keys {
		out[i] = fmt.Sprintf("s3://%s/%s", bucket, k)
	}
	return out
}

type Uploader struct {
	client ObjectPutter
	bucket string
	prefix string
	newID  func() string
}

// NewUploader returns an Uploader writing to bucket under prefix.
func NewUploader(client ObjectPutter, bucket, prefix string) *Uploader {
	return &Uploader{
		client: client,
		bucket: bucket,
		prefix: prefix,
		newID:  func() string { return uuid.NewString() },
	}
}

// New loads the default AWS configuration and returns an Uploader using it.
func New(ctx context.Context, bucket, prefix string) (*Uploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("unable to publish: no bucket configured")
	}
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}
	return NewUploader(s3.NewFromConfig(awsCfg), bucket, prefix), nil
}

func (u *Uploader) Bucket() string {
	return u.bucket
}

// Key returns the object key of name for a run: prefix/date/runID/name.
func (u *Uploader) Key(eventDate time.Time, runID, name string) string {
	date := internal.FormatEventDate(eventDate)
	if date == "" {
		date = undated
	}
	return path.Join(u.prefix, date, runID, name)
}

// Publish uploads artifacts under a fresh run id. All artifacts of a run
// share the id so one run never overwrites another.
func (u *Uploader) Publish(ctx context.Context, eventDate time.Time,
	artifacts []Artifact) (*Result, error) {

	res := &Result{RunID: u.newID(), Keys: make([]string, len(artifacts))}
	g, gctx := errgroup.WithContext(ctx)
	for i, a := range artifacts {
		key := u.Key(eventDate, res.RunID, a.Name)
		res.Keys[i] = key
		g.Go(func() error {
			in := &s3.PutObjectInput{
				Bucket: aws.String(u.bucket),
				Key:    aws.String(key),
				Body:   bytes.NewReader(a.Body),
			}
			if a.ContentType != "" {
				in.ContentType = aws.String(a.ContentType)
			}
			if _, err := u.client.PutObject(gctx, in); err != nil {
				return fmt.Errorf("unable to upload %v: %w", key, err)
			}
			log.Printf("publish.upload: s3://%v/%v (%v bytes)", u.bucket, key,
				len(a.Body))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}
