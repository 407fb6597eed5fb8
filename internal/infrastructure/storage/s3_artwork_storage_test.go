package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	return &s3.PutObjectOutput{}, f.err
}

type fakePresigner struct {
	input   *s3.GetObjectInput
	expires time.Duration
	err     error
}

func (f *fakePresigner) PresignGetObject(_ context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.input = params
	opts := &s3.PresignOptions{}
	for _, fn := range optFns {
		fn(opts)
	}
	f.expires = opts.Expires
	if f.err != nil {
		return nil, f.err
	}
	return &v4.PresignedHTTPRequest{URL: "https://bucket.example/" + *params.Key + "?sig=1"}, nil
}

func TestS3ArtworkStorage_Upload(t *testing.T) {
	t.Run("puts object with metadata", func(t *testing.T) {
		api := &fakeS3{}
		s := newS3ArtworkStorage(api, &fakePresigner{}, "artwork")

		err := s.Upload(context.Background(), "orders/o-1/artwork/a.png", strings.NewReader("png"), 3, "image/png")
		require.NoError(t, err)

		require.NotNil(t, api.input)
		assert.Equal(t, "artwork", *api.input.Bucket)
		assert.Equal(t, "orders/o-1/artwork/a.png", *api.input.Key)
		assert.Equal(t, "image/png", *api.input.ContentType)
		assert.Equal(t, int64(3), *api.input.ContentLength)
	})

	t.Run("wraps client error", func(t *testing.T) {
		boom := errors.New("boom")
		s := newS3ArtworkStorage(&fakeS3{err: boom}, &fakePresigner{}, "artwork")

		err := s.Upload(context.Background(), "k", strings.NewReader("x"), 1, "image/png")
		assert.ErrorIs(t, err, boom)
	})
}

func TestS3ArtworkStorage_PresignedURL(t *testing.T) {
	t.Run("empty key", func(t *testing.T) {
		p := &fakePresigner{}
		s := newS3ArtworkStorage(&fakeS3{}, p, "artwork")

		url, err := s.PresignedURL(context.Background(), "", time.Hour)
		require.NoError(t, err)
		assert.Empty(t, url)
		assert.Nil(t, p.input)
	})

	t.Run("uses ttl", func(t *testing.T) {
		p := &fakePresigner{}
		s := newS3ArtworkStorage(&fakeS3{}, p, "artwork")

		url, err := s.PresignedURL(context.Background(), "orders/o-1/artwork/a.pdf", 15*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "https://bucket.example/orders/o-1/artwork/a.pdf?sig=1", url)
		assert.Equal(t, 15*time.Minute, p.expires)
		assert.Equal(t, "artwork", *p.input.Bucket)
	})

	t.Run("presign error", func(t *testing.T) {
		s := newS3ArtworkStorage(&fakeS3{}, &fakePresigner{err: errors.New("no creds")}, "artwork")

		_, err := s.PresignedURL(context.Background(), "k", time.Minute)
		assert.Error(t, err)
	})
}
