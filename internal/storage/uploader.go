package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/config"
)

// Fotos de serviço e avatares nunca precisam de mais que isso.
const maxImageWidth = 1200

// Uploader converte imagens para webp e grava no bucket S3.
type Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewUploader(cfg *config.Config) *Uploader {
	if cfg.S3Bucket == "" {
		return &Uploader{}
	}

	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	})

	return &Uploader{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: cfg.S3PublicURL,
	}
}

func (u *Uploader) Enabled() bool {
	return u.client != nil
}

// UploadImage decodifica (jpeg/png/webp), reduz se necessário,
// reencoda em webp e grava sob uma chave uuid. Devolve a URL pública.
func (u *Uploader) UploadImage(ctx context.Context, r io.Reader, folder string) (string, error) {
	if u.client == nil {
		return "", fmt.Errorf("uploads desabilitados: bucket não configurado")
	}

	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("imagem inválida: %w", err)
	}

	src = downscale(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("falha ao converter para webp: %w", err)
	}

	key := fmt.Sprintf("%s/%s.webp", folder, uuid.NewString())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("falha ao enviar para o bucket: %w", err)
	}

	return fmt.Sprintf("%s/%s", u.publicURL, key), nil
}

func downscale(src image.Image) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= maxImageWidth {
		return src
	}

	ratio := float64(maxImageWidth) / float64(bounds.Dx())
	height := int(float64(bounds.Dy()) * ratio)

	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
