/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package publish

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type object struct {
	body        string
	contentType string
}

type memPutter struct {
	mu      sync.Mutex
	objects map[string]object
	fail    error
}

func (m *memPutter) PutObject(ctx context.Context, in *s3.PutObjectInput,
	optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {

	if m.fail != nil {
		return nil, m.fail
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.objects == nil {
		m.objects = make(map[string]object)
	}
	m.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = object{
		body:        string(body),
		contentType: aws.ToString(in.ContentType),
	}
	return &s3.PutObjectOutput{}, nil
}

func TestKey(t *testing.T) {
	u := NewUploader(&memPutter{}, "b", "brackets")
	date := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		date time.Time
		want string
	}{
		{name: "dated", date: date, want: "brackets/2026-03-08/run/bracket.html"},
		{name: "undated", want: "brackets/undated/run/bracket.html"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, u.Key(c.date, "run", "bracket.html"))
		})
	}

	assert.Equal(t, "2026-03-08/run/x.csv", NewUploader(nil, "b", "").Key(date, "run", "x.csv"))
}

func TestPublish(t *testing.T) {
	store := &memPutter{}
	u := NewUploader(store, "bucket", "brackets")
	u.newID = func() string { return "run-1" }

	date := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	res, err := u.Publish(context.Background(), date, []Artifact{
		{Name: "bracket.html", ContentType: "text/html; charset=utf-8", Body: []byte("<html/>")},
		{Name: "bracket.csv", Body: []byte("a,b\n")},
	})
	require.NoError(t, err)
	assert.Equal(t, "run-1", res.RunID)
	assert.Equal(t, []string{
		"brackets/2026-03-08/run-1/bracket.html",
		"brackets/2026-03-08/run-1/bracket.csv",
	}, res.Keys)
	assert.Equal(t, []string{
		"s3://bucket/brackets/2026-03-08/run-1/bracket.html",
		"s3://bucket/brackets/2026-03-08/run-1/bracket.csv",
	}, res.URIs(u.Bucket()))

	require.Len(t, store.objects, 2)
	html := store.objects["bucket/brackets/2026-03-08/run-1/bracket.html"]
	assert.Equal(t, "<html/>", html.body)
	assert.Equal(t, "text/html; charset=utf-8", html.contentType)
	assert.Equal(t, "", store.objects["bucket/brackets/2026-03-08/run-1/bracket.csv"].contentType)
}

func TestPublishRunIDsDiffer(t *testing.T) {
	u := NewUploader(&memPutter{}, "bucket", "p")
	a, err := u.Publish(context.Background(), time.Time{}, nil)
	require.NoError(t, err)
	b, err := u.Publish(context.Background(), time.Time{}, nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Len(t, a.RunID, 36)
}

func TestPublishError(t *testing.T) {
	boom := errors.New("boom")
	u := NewUploader(&memPutter{fail: boom}, "bucket", "p")
	_, err := u.Publish(context.Background(), time.Time{}, []Artifact{{Name: "x"}})
	assert.ErrorIs(t, err, boom)
}

func TestNewRequiresBucket(t *testing.T) {
	_, err := New(context.Background(), "", "p")
	assert.Error(t, err)
}
