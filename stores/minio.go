package stores

import (
	"bytes"
	"context"
	"io"

	"github.com/kod2ulz/gostart/logr"
	"github.com/kod2ulz/gostart/object"
	"github.com/kod2ulz/gostart/utils"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

type MinioConfig struct {
	UseSSL    bool
	AccessKey string
	SecretKey string
	Endpoint  string
}

func NewMinioConfig(prefix ...string) *MinioConfig {
	env := utils.Env.Helper(prefix...).OrDefault("MINIO_STORAGE")
	return &MinioConfig{
		UseSSL:    env.Get("USE_SSL", "true").Bool(),
		AccessKey: env.Get("ACCESS_KEY", "invalid-minio-key").String(),
		SecretKey: env.Get("SECRET_KEY", "invalid-minio-key").String(),
		Endpoint:  env.Get("ENDPOINT", "minio.example.dev").String(),
	}
}

func Minio(log *logr.Logger, conf *MinioConfig) (out *MinioClient, err error) {
	var client *minio.Client
	if conf == nil {
		conf = NewMinioConfig()
	}
	if client, err = minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to initialise minio client for %s", conf.Endpoint)
	}
	log.WithField("endpoint", conf.Endpoint).Info("initialised minio client")
	return &MinioClient{Client: client, log: log}, nil
}

type MinioClient struct {
	log *logr.Logger
	*minio.Client
}

// ObjectReaderFunc expects you to handle the closing yourself
type ObjectReaderFunc func(int64, string, io.ReadCloser) error

func (c *MinioClient) StreamObject(ctx context.Context, bucket, key string, out ObjectReaderFunc) (err error) {
	var reader *minio.Object
	var info minio.ObjectInfo
	if reader, err = c.GetObject(ctx, bucket, key, minio.GetObjectOptions{}); err != nil {
		return errors.Wrapf(err, "error fetching object %s from bucket %s", key, bucket)
	} else if reader == nil {
		return errors.Errorf("object %s/%s returned empty object from storage", bucket, key)
	}
	if info, err = reader.Stat(); err != nil {
		reader.Close()
		return errors.Wrapf(err, "failed to stat file retrieved from %s/%s", bucket, key)
	} else if info.Size == 0 {
		reader.Close()
		return errors.Errorf("object %s/%s returned empty object from storage", bucket, key)
	}
	var filename string = object.String(key).Split("/").Last()
	return out(info.Size, filename, reader)
}

// ReadObject loads the whole object into memory.
func (c *MinioClient) ReadObject(ctx context.Context, bucket, key string) (out []byte, err error) {
	err = c.StreamObject(ctx, bucket, key, func(size int64, _ string, reader io.ReadCloser) error {
		defer reader.Close()
		return ReadAll(&out, size, reader)
	})
	return
}

func ReadAll(out *[]byte, size int64, reader io.Reader) (err error) {
	buf := bytes.NewBuffer(make([]byte, 0, size))
	if _, err = buf.ReadFrom(reader); err != nil {
		return errors.Wrap(err, "failed to read object")
	}
	*out = buf.Bytes()
	return
}
