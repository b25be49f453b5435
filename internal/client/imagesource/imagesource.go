// Package imagesource loads proof photos for upload. A reference is a local
// file path, an http(s) URL, or an s3://bucket/key object in an
// S3-compatible store.
package imagesource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/pencilkeeper/internal/common"
	"github.com/dmitrijs2005/pencilkeeper/internal/netx"
)

// MaxImageSize caps how much is read from any source.
const MaxImageSize = 20 << 20

const s3Scheme = "s3://"

var (
	ErrNotJPEG   = errors.New("image is not a JPEG")
	ErrTooLarge  = errors.New("image is too large")
	ErrEmpty     = errors.New("image is empty")
	ErrBadS3Ref  = errors.New("malformed s3 reference, want s3://bucket/key")
	ErrNoS3Store = errors.New("s3 region is not configured")
)

type objectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// test seams
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3Client = func(cfg aws.Config, optFns ...func(*s3.Options)) objectGetter {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Config points the loader at an S3-compatible store. Empty AccessKey
// falls back to the default AWS credential chain.
type S3Config struct {
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
}

type Loader struct {
	cfg  S3Config
	http *http.Client

	mu sync.Mutex
	s3 objectGetter
}

func New(cfg S3Config) *Loader {
	return &Loader{cfg: cfg, http: &http.Client{Timeout: time.Minute}}
}

// Load returns the bytes behind ref after checking they are a JPEG.
func (l *Loader) Load(ctx context.Context, ref string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case strings.HasPrefix(ref, s3Scheme):
		data, err = l.loadS3(ctx, ref)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		data, err = l.loadURL(ctx, ref)
	default:
		data, err = loadFile(ref)
	}
	if err != nil {
		return nil, err
	}
	if err := checkJPEG(data); err != nil {
		return nil, err
	}
	return data, nil
}

// ParseS3Ref splits s3://bucket/key.
func ParseS3Ref(ref string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(ref, s3Scheme)
	if !ok {
		return "", "", ErrBadS3Ref
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", ErrBadS3Ref
	}
	return bucket, key, nil
}

func loadFile(path string) ([]byte, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if st.Size() > MaxImageSize {
		return nil, ErrTooLarge
	}
	return os.ReadFile(path)
}

func (l *Loader) loadURL(ctx context.Context, url string) ([]byte, error) {
	data, err := netx.Download(ctx, l.http, url, MaxImageSize)
	if errors.Is(err, netx.ErrTooLarge) {
		return nil, ErrTooLarge
	}
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	return data, nil
}

func (l *Loader) loadS3(ctx context.Context, ref string) ([]byte, error) {
	bucket, key, err := ParseS3Ref(ref)
	if err != nil {
		return nil, err
	}

	client, err := l.client(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3 object: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read s3 object: %w", err)
	}
	if len(data) > MaxImageSize {
		return nil, ErrTooLarge
	}
	return data, nil
}

func (l *Loader) client(ctx context.Context) (objectGetter, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.s3 != nil {
		return l.s3, nil
	}
	if l.cfg.Region == "" {
		return nil, ErrNoS3Store
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(l.cfg.Region)}
	if l.cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(l.cfg.AccessKey, l.cfg.SecretKey, "")))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	l.s3 = newS3Client(awsCfg, func(o *s3.Options) {
		if l.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(l.cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})
	return l.s3, nil
}

func checkJPEG(data []byte) error {
	if len(data) == 0 {
		return ErrEmpty
	}
	if http.DetectContentType(data) != common.MIMEImageJPEG {
		return ErrNotJPEG
	}
	return nil
}

