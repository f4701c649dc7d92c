// Package storage publishes optimized product images to an S3-compatible
// object store and hands back public or CDN-fronted URLs. Keys are
// timestamp-unique and never overwritten in place, which is what makes
// the immutable cache headers safe.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Uploaded objects are immutable, so far-future caching is safe.
const cacheControl = "public, max-age=31536000, immutable"

// Config holds the object store connection settings.
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string // empty for AWS S3; set for R2/Spaces/MinIO
	AccessKey string // empty to use the default credential chain
	SecretKey string
	// CDNBaseURL, when set, prefixes all returned URLs instead of the
	// storage endpoint.
	CDNBaseURL string
	// UsePathStyle addresses the bucket in the URL path instead of the
	// host, required by most non-AWS endpoints.
	UsePathStyle bool
}

// Publisher is a reusable client for one bucket. Construct once with
// NewPublisher and share across requests; it holds no per-call state.
type Publisher struct {
	client *s3.Client
	cfg    Config
}

// NewPublisher builds the S3 client. Static credentials are used when
// configured, otherwise the default provider chain (instance role, env).
func NewPublisher(ctx context.Context, cfg Config) (*Publisher, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket is required")
	}
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return &Publisher{client: client, cfg: cfg}, nil
}

// Publish uploads data under key with public-read ACL and immutable
// cache headers, returning the public URL.
func (p *Publisher) Publish(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(p.cfg.Bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String(cacheControl),
		ACL:          types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("storage: put %s: %w", key, err)
	}
	return p.URL(key), nil
}

// Delete removes a single object. Callers deleting a published image are
// responsible for removing the full-size and thumbnail keys together.
func (p *Publisher) Delete(ctx context.Context, key string) error {
	_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

// URL returns the public URL for a key: CDN-prefixed when a CDN base is
// configured, else the storage endpoint's direct URL.
func (p *Publisher) URL(key string) string {
	return PublicURL(p.cfg, key)
}

// PublicURL builds the public URL for a key under the given config.
func PublicURL(cfg Config, key string) string {
	if cfg.CDNBaseURL != "" {
		return strings.TrimRight(cfg.CDNBaseURL, "/") + "/" + key
	}
	if cfg.Endpoint != "" {
		base := strings.TrimRight(cfg.Endpoint, "/")
		if cfg.UsePathStyle {
			return base + "/" + cfg.Bucket + "/" + key
		}
		return base + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", cfg.Bucket, cfg.Region, key)
}

// ObjectKey builds the deterministic key for an upload:
// "{category}/{subcategory}/{timestamp}-{slug}.{ext}". The timestamp
// makes keys unique so objects are never overwritten in place.
func ObjectKey(category, subcategory, name, ext string) string {
	return ObjectKeyAt(time.Now().UTC(), category, subcategory, name, ext)
}

// ObjectKeyAt is ObjectKey with an explicit timestamp. Both the
// subcategory segment and the name are slugified so keys never carry
// spaces or characters needing URL escaping.
func ObjectKeyAt(t time.Time, category, subcategory, name, ext string) string {
	sub := slugify(subcategory)
	if sub == "" {
		sub = "general"
	}
	slug := slugify(name)
	if slug == "" {
		slug = "image"
	}
	return fmt.Sprintf("%s/%s/%d-%s.%s", category, sub, t.Unix(), slug, strings.TrimPrefix(ext, "."))
}

// ThumbKey derives the thumbnail key for a primary key by prefixing the
// filename with "thumb-".
func ThumbKey(key string) string {
	dir, file := path.Split(key)
	return dir + "thumb-" + file
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
