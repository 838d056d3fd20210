// Package blob sube objetos (imágenes de productos) a un bucket S3
// compatible y devuelve la URL pública resultante. Ningún binario se
// persiste en este proceso.
package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/storesight/storesight/internal/observability/logger"
)

// Config configura el backend S3.
type Config struct {
	Bucket    string
	Prefix    string
	Region    string
	Endpoint  string // vacío = AWS; no-vacío = servicio S3-compatible
	AccessKey string
	SecretKey string
	// PublicBaseURL es la base de la URL pública. Si está vacía se
	// construye la URL estándar de S3.
	PublicBaseURL string
}

// Uploader es la interfaz que consume el resto del servicio.
type Uploader interface {
	// Upload sube el contenido y retorna su URL pública.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// S3Uploader implementa Uploader sobre S3.
type S3Uploader struct {
	client        *s3.S3
	bucket        string
	prefix        string
	publicBaseURL string
}

// NewS3 crea el uploader. Las credenciales son obligatorias: la subida
// de imágenes siempre es una operación autenticada server-side.
func NewS3(cfg Config) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("blob: bucket is required")
	}

	awsCfg := aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(&awsCfg)
	if err != nil {
		return nil, fmt.Errorf("blob: create session: %w", err)
	}

	publicBase := strings.TrimRight(cfg.PublicBaseURL, "/")
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &S3Uploader{
		client:        s3.New(sess),
		bucket:        cfg.Bucket,
		prefix:        strings.Trim(cfg.Prefix, "/"),
		publicBaseURL: publicBase,
	}, nil
}

// Upload sube el objeto con ACL de lectura pública y retorna la URL.
func (u *S3Uploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("blob: read body: %w", err)
	}

	objectKey := key
	if u.prefix != "" {
		objectKey = path.Join(u.prefix, key)
	}

	_, err = u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("blob: put object: %w", err)
	}

	url := u.publicBaseURL + "/" + objectKey
	logger.From(ctx).Debug("object uploaded",
		logger.Component("blob"),
		logger.Key(objectKey),
		logger.Int("bytes", len(data)),
	)
	return url, nil
}
