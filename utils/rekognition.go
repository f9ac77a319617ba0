package utils

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	rektypes "github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

var rekClient *rekognition.Client

func initRekognition() error {
	awsRegion := os.Getenv("AWS_REGION")
	if awsRegion == "" {
		return errors.New("AWS_REGION not set")
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return fmt.Errorf("unable to load AWS config: %w", err)
	}
	rekClient = rekognition.NewFromConfig(cfg)
	return nil
}

// ModerateImage runs the uploaded photo through Rekognition moderation and
// returns the labels that crossed the confidence bar. An empty slice means
// the photo is fine to publish. A missing or broken AWS setup is an error,
// never a crash: the caller decides whether to publish unmoderated.
func ModerateImage(imageBytes []byte) ([]string, error) {
	if rekClient == nil {
		if err := initRekognition(); err != nil {
			return nil, err
		}
	}

	out, err := rekClient.DetectModerationLabels(context.TODO(), &rekognition.DetectModerationLabelsInput{
		Image:         &rektypes.Image{Bytes: imageBytes},
		MinConfidence: aws.Float32(80),
	})
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(out.ModerationLabels))
	for _, l := range out.ModerationLabels {
		labels = append(labels, aws.ToString(l.Name))
	}
	return labels, nil
}
