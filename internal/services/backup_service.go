package services

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"carwash-backend/internal/config"
	"carwash-backend/internal/logger"
	"carwash-backend/internal/timeutil"
)

// BackupService dumps the database with pg_dump on a cron schedule and
// uploads the dump to S3-compatible storage.
type BackupService struct {
	cfg  *config.Config
	cron *cron.Cron
}

func NewBackupService(cfg *config.Config) *BackupService {
	return &BackupService{cfg: cfg}
}

func (s *BackupService) StartScheduler() {
	if !s.cfg.Backup.Enabled {
		logger.L().Info("backup scheduler disabled")
		return
	}
	schedule := s.cfg.Backup.Schedule
	if schedule == "" {
		schedule = "0 3 * * *"
	}
	s.cron = cron.New()
	_, err := s.cron.AddFunc(schedule, func() {
		if err := s.Run(context.Background()); err != nil {
			logger.L().Error("backup failed", zap.Error(err))
		}
	})
	if err != nil {
		logger.L().Error("failed to schedule backups", zap.Error(err))
		return
	}
	s.cron.Start()
	logger.L().Info("backup scheduler started", zap.String("schedule", schedule))
}

func (s *BackupService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Run produces one dump and uploads it. Exposed so an admin endpoint can
// trigger an off-schedule backup.
func (s *BackupService) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	dump, err := s.dump(ctx)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("backups/%s.sql", timeutil.Now().Format("2006-01-02_150405"))
	if err := s.upload(ctx, key, dump); err != nil {
		return err
	}

	logger.L().Info("backup uploaded",
		zap.String("key", key),
		zap.Int("bytes", len(dump)))
	return nil
}

func (s *BackupService) dump(ctx context.Context) ([]byte, error) {
	db := s.cfg.Database
	cmd := exec.CommandContext(ctx, "pg_dump",
		"--host", db.Host,
		"--port", fmt.Sprintf("%d", db.Port),
		"--username", db.User,
		"--dbname", db.Name,
		"--no-password",
	)
	cmd.Env = append(cmd.Environ(), "PGPASSWORD="+db.Password)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pg_dump failed: %w: %s", err, stderr.String())
	}
	return out.Bytes(), nil
}

func (s *BackupService) upload(ctx context.Context, key string, data []byte) error {
	b := s.cfg.Backup
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			b.AccessKey, b.SecretKey, "")),
		awsconfig.WithRegion(b.Region),
	)
	if err != nil {
		return fmt.Errorf("failed to configure s3 client: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if b.Endpoint != "" {
			o.BaseEndpoint = aws.String(b.Endpoint)
		}
	})

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(b.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("failed to upload backup: %w", err)
	}
	return nil
}
